package stream

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config is the application configuration read from YAML.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientID"`
		Qos      byte   `yaml:"qos"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	FrameRate float64  `yaml:"frameRate"`
	Tracks    string   `yaml:"tracks"`
	Playlist  []string `yaml:"playlist"`
	Watch     bool     `yaml:"watch"`
	Api       struct {
		Addr   string `yaml:"addr"`
		Static string `yaml:"static"`
	} `yaml:"api"`
}

// DefaultConfig returns the values used for anything a config file leaves out.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.ClientID = "ledtx"
	c.Mqtt.Qos = 2
	c.Mqtt.Topics.Stream = "home/xmastree/stream"
	c.FrameRate = 30
	c.Tracks = "tracks.yaml"
	c.Api.Addr = ":3000"
	c.Api.Static = "client/dist"
	return c
}

// ReadConfig decodes YAML from path on top of DefaultConfig.
func ReadConfig(path string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return config, errors.Wrap(err, "open config")
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, errors.Wrapf(err, "decode config %s", path)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks values that would make the streamer misbehave.
func (c *Config) Validate() error {
	if c.FrameRate <= 0 {
		return errors.Errorf("config: frameRate must be positive, got %v", c.FrameRate)
	}
	if c.Mqtt.Qos > 2 {
		return errors.Errorf("config: mqtt qos must be 0, 1 or 2, got %d", c.Mqtt.Qos)
	}
	if c.Tracks == "" {
		return errors.New("config: tracks file not set")
	}
	return nil
}
