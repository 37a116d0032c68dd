package config

const (
	defaultDataDir           = "~/.local/share/carmatch"
	defaultLogDir            = "~/.local/share/carmatch/logs"
	defaultAPIBind           = "127.0.0.1:7583"
	defaultXCatalogBaseURL   = "https://x-catalogue.motork.io"
	defaultXCatalogCountry   = "it"
	defaultRequestTimeout    = 30
	defaultRequestsPerSecond = 5.0
	defaultRefreshInterval   = 3600
	defaultProfileName       = "default"
	defaultLogLevel          = "info"
	defaultLogFormat         = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		XCatalog: XCatalog{
			BaseURL:           defaultXCatalogBaseURL,
			Country:           defaultXCatalogCountry,
			RequestTimeout:    defaultRequestTimeout,
			RequestsPerSecond: defaultRequestsPerSecond,
		},
		Catalog: Catalog{
			RefreshInterval: defaultRefreshInterval,
		},
		Matching: Matching{
			DefaultProfile: defaultProfileName,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
