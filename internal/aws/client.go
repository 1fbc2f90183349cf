// Package aws builds the AWS SDK clients used by the commands and defines the narrow client
// interfaces the commands depend on.
package aws

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

const appID = "awsctl"

// Client wraps AWS SDK clients
type Client struct {
	CodeStar *codestarconnections.Client
	DRS      *drs.Client
	STS      *sts.Client

	cfg      awsv2.Config
	profile  string
	region   string
	endpoint string
}

// ClientOption allows customizing the AWS Client
type ClientOption func(*Client)

// WithProfile sets the shared config profile. Empty leaves the SDK default chain in charge.
func WithProfile(profile string) ClientOption {
	return func(c *Client) {
		c.profile = profile
	}
}

// WithRegion sets the AWS region for the client
func WithRegion(region string) ClientOption {
	return func(c *Client) {
		c.region = region
	}
}

// WithEndpoint points every service client at url instead of the resolved AWS endpoint.
func WithEndpoint(url string) ClientOption {
	return func(c *Client) {
		c.endpoint = url
	}
}

// LoadOptions returns the SDK config load options for the client settings.
func (c *Client) LoadOptions() []func(*config.LoadOptions) error {
	configOpts := []func(*config.LoadOptions) error{
		config.WithAppID(appID),
	}

	if c.profile != "" {
		configOpts = append(configOpts, config.WithSharedConfigProfile(c.profile))
	}

	if c.region != "" {
		configOpts = append(configOpts, config.WithRegion(c.region))
	}

	return configOpts
}

// NewClient loads the SDK configuration and creates the service clients.
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	cfg, err := config.LoadDefaultConfig(ctx, c.LoadOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	if c.endpoint != "" {
		cfg.BaseEndpoint = awsv2.String(c.endpoint)
	}
	c.cfg = cfg

	c.CodeStar = codestarconnections.NewFromConfig(cfg)
	c.DRS = drs.NewFromConfig(cfg)
	c.STS = sts.NewFromConfig(cfg)

	return c, nil
}

// Config returns the resolved SDK configuration.
func (c *Client) Config() awsv2.Config {
	return c.cfg
}

// Region returns the region the clients were configured with.
func (c *Client) Region() string {
	return c.cfg.Region
}

// Profile returns the shared config profile requested for the client, if any.
func (c *Client) Profile() string {
	return c.profile
}
