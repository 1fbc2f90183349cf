package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/codestarconnections"
	"github.com/aws/aws-sdk-go-v2/service/drs"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// CodeStarAPI is the subset of the CodeStar Connections client used by the codestar commands.
type CodeStarAPI interface {
	CreateConnection(ctx context.Context, params *codestarconnections.CreateConnectionInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.CreateConnectionOutput, error)
	DeleteConnection(ctx context.Context, params *codestarconnections.DeleteConnectionInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.DeleteConnectionOutput, error)
	GetConnection(ctx context.Context, params *codestarconnections.GetConnectionInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.GetConnectionOutput, error)
	ListConnections(ctx context.Context, params *codestarconnections.ListConnectionsInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.ListConnectionsOutput, error)
	CreateHost(ctx context.Context, params *codestarconnections.CreateHostInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.CreateHostOutput, error)
	DeleteHost(ctx context.Context, params *codestarconnections.DeleteHostInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.DeleteHostOutput, error)
	GetHost(ctx context.Context, params *codestarconnections.GetHostInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.GetHostOutput, error)
	ListHosts(ctx context.Context, params *codestarconnections.ListHostsInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.ListHostsOutput, error)
	UpdateHost(ctx context.Context, params *codestarconnections.UpdateHostInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.UpdateHostOutput, error)
	CreateRepositoryLink(ctx context.Context, params *codestarconnections.CreateRepositoryLinkInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.CreateRepositoryLinkOutput, error)
	DeleteRepositoryLink(ctx context.Context, params *codestarconnections.DeleteRepositoryLinkInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.DeleteRepositoryLinkOutput, error)
	GetRepositoryLink(ctx context.Context, params *codestarconnections.GetRepositoryLinkInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.GetRepositoryLinkOutput, error)
	ListRepositoryLinks(ctx context.Context, params *codestarconnections.ListRepositoryLinksInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.ListRepositoryLinksOutput, error)
	UpdateRepositoryLink(ctx context.Context, params *codestarconnections.UpdateRepositoryLinkInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.UpdateRepositoryLinkOutput, error)
	CreateSyncConfiguration(ctx context.Context, params *codestarconnections.CreateSyncConfigurationInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.CreateSyncConfigurationOutput, error)
	DeleteSyncConfiguration(ctx context.Context, params *codestarconnections.DeleteSyncConfigurationInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.DeleteSyncConfigurationOutput, error)
	GetSyncConfiguration(ctx context.Context, params *codestarconnections.GetSyncConfigurationInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.GetSyncConfigurationOutput, error)
	ListSyncConfigurations(ctx context.Context, params *codestarconnections.ListSyncConfigurationsInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.ListSyncConfigurationsOutput, error)
	UpdateSyncConfiguration(ctx context.Context, params *codestarconnections.UpdateSyncConfigurationInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.UpdateSyncConfigurationOutput, error)
	ListRepositorySyncDefinitions(ctx context.Context, params *codestarconnections.ListRepositorySyncDefinitionsInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.ListRepositorySyncDefinitionsOutput, error)
	GetRepositorySyncStatus(ctx context.Context, params *codestarconnections.GetRepositorySyncStatusInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.GetRepositorySyncStatusOutput, error)
	GetResourceSyncStatus(ctx context.Context, params *codestarconnections.GetResourceSyncStatusInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.GetResourceSyncStatusOutput, error)
	GetSyncBlockerSummary(ctx context.Context, params *codestarconnections.GetSyncBlockerSummaryInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.GetSyncBlockerSummaryOutput, error)
	UpdateSyncBlocker(ctx context.Context, params *codestarconnections.UpdateSyncBlockerInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.UpdateSyncBlockerOutput, error)
	ListTagsForResource(ctx context.Context, params *codestarconnections.ListTagsForResourceInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.ListTagsForResourceOutput, error)
	TagResource(ctx context.Context, params *codestarconnections.TagResourceInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *codestarconnections.UntagResourceInput, optFns ...func(*codestarconnections.Options)) (*codestarconnections.UntagResourceOutput, error)
}

// DRSAPI is the subset of the Elastic Disaster Recovery client used by the drs commands.
type DRSAPI interface {
	InitializeService(ctx context.Context, params *drs.InitializeServiceInput, optFns ...func(*drs.Options)) (*drs.InitializeServiceOutput, error)
	DescribeSourceServers(ctx context.Context, params *drs.DescribeSourceServersInput, optFns ...func(*drs.Options)) (*drs.DescribeSourceServersOutput, error)
	DeleteSourceServer(ctx context.Context, params *drs.DeleteSourceServerInput, optFns ...func(*drs.Options)) (*drs.DeleteSourceServerOutput, error)
	DisconnectSourceServer(ctx context.Context, params *drs.DisconnectSourceServerInput, optFns ...func(*drs.Options)) (*drs.DisconnectSourceServerOutput, error)
	StartReplication(ctx context.Context, params *drs.StartReplicationInput, optFns ...func(*drs.Options)) (*drs.StartReplicationOutput, error)
	StopReplication(ctx context.Context, params *drs.StopReplicationInput, optFns ...func(*drs.Options)) (*drs.StopReplicationOutput, error)
	DescribeJobs(ctx context.Context, params *drs.DescribeJobsInput, optFns ...func(*drs.Options)) (*drs.DescribeJobsOutput, error)
	DescribeJobLogItems(ctx context.Context, params *drs.DescribeJobLogItemsInput, optFns ...func(*drs.Options)) (*drs.DescribeJobLogItemsOutput, error)
	DeleteJob(ctx context.Context, params *drs.DeleteJobInput, optFns ...func(*drs.Options)) (*drs.DeleteJobOutput, error)
	StartRecovery(ctx context.Context, params *drs.StartRecoveryInput, optFns ...func(*drs.Options)) (*drs.StartRecoveryOutput, error)
	DescribeRecoveryInstances(ctx context.Context, params *drs.DescribeRecoveryInstancesInput, optFns ...func(*drs.Options)) (*drs.DescribeRecoveryInstancesOutput, error)
	DescribeRecoverySnapshots(ctx context.Context, params *drs.DescribeRecoverySnapshotsInput, optFns ...func(*drs.Options)) (*drs.DescribeRecoverySnapshotsOutput, error)
	DeleteRecoveryInstance(ctx context.Context, params *drs.DeleteRecoveryInstanceInput, optFns ...func(*drs.Options)) (*drs.DeleteRecoveryInstanceOutput, error)
	DisconnectRecoveryInstance(ctx context.Context, params *drs.DisconnectRecoveryInstanceInput, optFns ...func(*drs.Options)) (*drs.DisconnectRecoveryInstanceOutput, error)
	TerminateRecoveryInstances(ctx context.Context, params *drs.TerminateRecoveryInstancesInput, optFns ...func(*drs.Options)) (*drs.TerminateRecoveryInstancesOutput, error)
	StartFailbackLaunch(ctx context.Context, params *drs.StartFailbackLaunchInput, optFns ...func(*drs.Options)) (*drs.StartFailbackLaunchOutput, error)
	StopFailback(ctx context.Context, params *drs.StopFailbackInput, optFns ...func(*drs.Options)) (*drs.StopFailbackOutput, error)
	ReverseReplication(ctx context.Context, params *drs.ReverseReplicationInput, optFns ...func(*drs.Options)) (*drs.ReverseReplicationOutput, error)
	GetLaunchConfiguration(ctx context.Context, params *drs.GetLaunchConfigurationInput, optFns ...func(*drs.Options)) (*drs.GetLaunchConfigurationOutput, error)
	UpdateLaunchConfiguration(ctx context.Context, params *drs.UpdateLaunchConfigurationInput, optFns ...func(*drs.Options)) (*drs.UpdateLaunchConfigurationOutput, error)
	GetReplicationConfiguration(ctx context.Context, params *drs.GetReplicationConfigurationInput, optFns ...func(*drs.Options)) (*drs.GetReplicationConfigurationOutput, error)
	DescribeLaunchConfigurationTemplates(ctx context.Context, params *drs.DescribeLaunchConfigurationTemplatesInput, optFns ...func(*drs.Options)) (*drs.DescribeLaunchConfigurationTemplatesOutput, error)
	DeleteLaunchConfigurationTemplate(ctx context.Context, params *drs.DeleteLaunchConfigurationTemplateInput, optFns ...func(*drs.Options)) (*drs.DeleteLaunchConfigurationTemplateOutput, error)
	DescribeReplicationConfigurationTemplates(ctx context.Context, params *drs.DescribeReplicationConfigurationTemplatesInput, optFns ...func(*drs.Options)) (*drs.DescribeReplicationConfigurationTemplatesOutput, error)
	DeleteReplicationConfigurationTemplate(ctx context.Context, params *drs.DeleteReplicationConfigurationTemplateInput, optFns ...func(*drs.Options)) (*drs.DeleteReplicationConfigurationTemplateOutput, error)
	DescribeSourceNetworks(ctx context.Context, params *drs.DescribeSourceNetworksInput, optFns ...func(*drs.Options)) (*drs.DescribeSourceNetworksOutput, error)
	DeleteSourceNetwork(ctx context.Context, params *drs.DeleteSourceNetworkInput, optFns ...func(*drs.Options)) (*drs.DeleteSourceNetworkOutput, error)
	ListStagingAccounts(ctx context.Context, params *drs.ListStagingAccountsInput, optFns ...func(*drs.Options)) (*drs.ListStagingAccountsOutput, error)
	ListExtensibleSourceServers(ctx context.Context, params *drs.ListExtensibleSourceServersInput, optFns ...func(*drs.Options)) (*drs.ListExtensibleSourceServersOutput, error)
	ListTagsForResource(ctx context.Context, params *drs.ListTagsForResourceInput, optFns ...func(*drs.Options)) (*drs.ListTagsForResourceOutput, error)
	TagResource(ctx context.Context, params *drs.TagResourceInput, optFns ...func(*drs.Options)) (*drs.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *drs.UntagResourceInput, optFns ...func(*drs.Options)) (*drs.UntagResourceOutput, error)
}

// STSAPI is used to report the caller identity.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

var (
	_ CodeStarAPI = (*codestarconnections.Client)(nil)
	_ DRSAPI      = (*drs.Client)(nil)
	_ STSAPI      = (*sts.Client)(nil)
)
