// Package cli connects cobra commands to the operation runner: it resolves the AWS target
// from flags, environment and the selected context, reads typed flag values and renders
// results in the configured output format.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/viper"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/config"
	"github.com/vietdv277/awsctl/internal/logging"
	"github.com/vietdv277/awsctl/internal/output"
)

// Viper keys shared by the root command and this package.
const (
	KeyProfile     = "profile"
	KeyRegion      = "region"
	KeyEndpointURL = "endpoint-url"
	KeyContext     = "context"
	KeyOutput      = "output"
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
	KeyConfig      = "config"
)

// Target is the AWS account and region commands run against.
type Target struct {
	Context     string
	Profile     string
	Region      string
	EndpointURL string
}

// ResolveTarget merges flags and AWSCTL_* variables (through viper) with the selected context.
// Explicit values win; anything left empty falls through to the SDK's own resolution.
func ResolveTarget() (Target, error) {
	t := Target{
		Profile:     viper.GetString(KeyProfile),
		Region:      viper.GetString(KeyRegion),
		EndpointURL: viper.GetString(KeyEndpointURL),
	}

	var (
		ctx  *config.Context
		name = viper.GetString(KeyContext)
		err  error
	)
	if name != "" {
		ctx, err = config.GetContext(name)
	} else {
		ctx, name, err = config.GetCurrentContext()
	}
	if err != nil {
		return Target{}, err
	}

	t.Context = name
	if ctx != nil {
		if t.Profile == "" {
			t.Profile = ctx.Profile
		}
		if t.Region == "" {
			t.Region = ctx.Region
		}
		if t.EndpointURL == "" {
			t.EndpointURL = ctx.EndpointURL
		}
	}

	return t, nil
}

// ClientOptions converts the target into client options.
func (t Target) ClientOptions() []awsclient.ClientOption {
	return []awsclient.ClientOption{
		awsclient.WithProfile(t.Profile),
		awsclient.WithRegion(t.Region),
		awsclient.WithEndpoint(t.EndpointURL),
	}
}

// NewAWSClient builds SDK clients for the resolved target.
func NewAWSClient(ctx context.Context) (*awsclient.Client, error) {
	t, err := ResolveTarget()
	if err != nil {
		return nil, err
	}
	return awsclient.NewClient(ctx, t.ClientOptions()...)
}

// OutputFormat returns the output format from --output / AWSCTL_OUTPUT, then the config
// defaults, then table.
func OutputFormat() string {
	if f := viper.GetString(KeyOutput); f != "" {
		return f
	}
	if cfg, err := config.LoadConfig(); err == nil && cfg.Defaults.Output != "" {
		return cfg.Defaults.Output
	}
	return output.FormatTable
}

// LogLevel returns the log level from --log-level / AWSCTL_LOG_LEVEL, then the config defaults.
func LogLevel() string {
	if l := viper.GetString(KeyLogLevel); l != "" {
		return l
	}
	if cfg, err := config.LoadConfig(); err == nil {
		return cfg.Defaults.LogLevel
	}
	return ""
}

// NewLogger returns the diagnostics logger writing to w.
func NewLogger(w io.Writer) *slog.Logger {
	return logging.New(w, logging.Config{
		Level:  LogLevel(),
		Format: viper.GetString(KeyLogFormat),
	})
}
