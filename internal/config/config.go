package config

type Config struct {
	InputPath    string
	OutputVideo  string
	FPS          int
	Workers      int
	VideoEncoder string
	Quality      int
	ShowStats    bool
	BuildVersion string
}
