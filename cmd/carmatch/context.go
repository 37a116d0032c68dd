package main

import (
	"strings"
	"sync"

	"carmatch/internal/config"
)

type commandContext struct {
	configFlag  *string
	addressFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, addressFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		addressFlag: addressFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) apiClient() (*apiClient, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	address := cfg.Paths.APIBind
	if c.addressFlag != nil && strings.TrimSpace(*c.addressFlag) != "" {
		address = strings.TrimSpace(*c.addressFlag)
	}
	return newAPIClient(address, cfg.Paths.APIToken), nil
}
