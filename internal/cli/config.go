package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/brian-c/string-spacing-calculator/pkg/render/diagram"
)

// envPrefix prefixes environment overrides, e.g. STRINGSPACING_RENDER_DPI.
const envPrefix = "STRINGSPACING"

// Config is the application configuration read from stringspacing.toml.
//
//	[diagram]
//	height = 0.5
//	hairline = 0.005
//	fill = "lime"
//
//	[render]
//	dpi = 300
//	format = "svg"
type Config struct {
	Diagram struct {
		Height      float64 `mapstructure:"height"`
		Hairline    float64 `mapstructure:"hairline"`
		Fill        string  `mapstructure:"fill"`
		FillOpacity float64 `mapstructure:"fill_opacity"`
	} `mapstructure:"diagram"`
	Render struct {
		DPI    float64 `mapstructure:"dpi"`
		Format string  `mapstructure:"format"`
	} `mapstructure:"render"`
	Presets struct {
		File string `mapstructure:"file"`
	} `mapstructure:"presets"`
	Settings struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"settings"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("diagram.height", diagram.DefaultHeight)
	v.SetDefault("diagram.hairline", diagram.DefaultHairline)
	v.SetDefault("diagram.fill", diagram.DefaultFill)
	v.SetDefault("diagram.fill_opacity", diagram.DefaultFillOpacity)
	v.SetDefault("render.dpi", diagram.DefaultDPI)
	v.SetDefault("render.format", formatSVG)
	v.SetDefault("presets.file", filepath.Join(configDir(), "presets.toml"))
	v.SetDefault("settings.dir", filepath.Join(configDir(), "settings"))
}

func defaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

// loadConfig reads the config file, if any, over the defaults. An explicit
// file must exist; otherwise a missing stringspacing.toml is not an error.
func loadConfig(file string) (Config, error) {
	v := viper.New()
	v.SetConfigName(appName)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir()) // $XDG_CONFIG_HOME takes precedence over ./config
	v.AddConfigPath("./config")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// diagramOptions converts the diagram section into build options.
func (cfg Config) diagramOptions() []diagram.Option {
	return []diagram.Option{
		diagram.WithHeight(cfg.Diagram.Height),
		diagram.WithHairline(cfg.Diagram.Hairline),
		diagram.WithFill(cfg.Diagram.Fill, cfg.Diagram.FillOpacity),
	}
}
