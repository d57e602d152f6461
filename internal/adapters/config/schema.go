package config

// File represents the structure of the orbis.yaml configuration file. All
// fields are optional; absent fields keep their built-in defaults.
type File struct {
	Render RenderDTO `yaml:"render"`
	Frames FramesDTO `yaml:"frames"`
}

// RenderDTO holds the resampling settings of the configuration file.
type RenderDTO struct {
	Width      *int    `yaml:"width"`
	Height     *int    `yaml:"height"`
	CubeSize   *int    `yaml:"cubeSize"`
	SubWidth   *int    `yaml:"subWidth"`
	SubHeight  *int    `yaml:"subHeight"`
	Projection *string `yaml:"projection"`
	Format     *string `yaml:"format"`
	Workers    *int    `yaml:"workers"`
	Cache      *bool   `yaml:"cache"`
	CacheDir   *string `yaml:"cacheDir"`
}

// FramesDTO holds the frame range of the configuration file.
type FramesDTO struct {
	Start *int `yaml:"start"`
	End   *int `yaml:"end"`
	Step  *int `yaml:"step"`
}
