package aws

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// CallerIdentity represents AWS caller identity information
type CallerIdentity struct {
	Account string
	Arn     string
	UserID  string
}

// GetCallerIdentity returns the identity the client's credentials resolve to.
func GetCallerIdentity(ctx context.Context, client STSAPI) (*CallerIdentity, error) {
	output, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get caller identity: %w", err)
	}

	return &CallerIdentity{
		Account: awsv2.ToString(output.Account),
		Arn:     awsv2.ToString(output.Arn),
		UserID:  awsv2.ToString(output.UserId),
	}, nil
}
