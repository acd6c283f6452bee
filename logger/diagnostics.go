package logger

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ryansonshine/aws-cli-util-logger/internal/awscli"
	"github.com/ryansonshine/aws-cli-util-logger/internal/system"
)

// DefaultProfile is the AWS profile inspected when none is given.
const DefaultProfile = awscli.DefaultProfile

// Diagnostics is the environment snapshot printed by ReportDiagnostics.
// Failed lookups hold awscli.NotFound.
type Diagnostics struct {
	Profile        string
	CLIVersion     string
	Platform       string
	Release        string
	RuntimeVersion string
	ProfileConfig  string
}

// SystemInfo collects diagnostics for profile without printing anything.
// The two CLI lookups run concurrently and never fail.
func (l *Logger) SystemInfo(ctx context.Context, profile string) Diagnostics {
	if profile == "" {
		profile = DefaultProfile
	}

	d := Diagnostics{Profile: profile}

	var g errgroup.Group
	g.Go(func() error {
		d.CLIVersion = awscli.Fallback(l.cli.Version(ctx))
		return nil
	})
	g.Go(func() error {
		config, err := l.cli.ConfigList(ctx, profile)
		if err == nil {
			config = "\n" + config
		}
		d.ProfileConfig = awscli.Fallback(config, err)
		return nil
	})
	// Lookups map failures to NotFound, so no goroutine returns an error.
	_ = g.Wait()

	d.Platform = system.Platform()
	d.Release = system.Release()
	d.RuntimeVersion = system.RuntimeVersion()
	return d
}

// ReportDiagnostics prints the AWS CLI version, OS and Go runtime versions,
// and the configuration of profile at debug level. The lookups run even
// when the logger isn't verbose.
func (l *Logger) ReportDiagnostics(ctx context.Context, profile string) {
	l.PrintDiagnostics(l.SystemInfo(ctx, profile))
}

// PrintDiagnostics prints d at debug level.
func (l *Logger) PrintDiagnostics(d Diagnostics) {
	l.Debug("===========")
	l.Debug("SYSTEM INFO")
	l.Debug("===========")
	l.Debug("AWS CLI Version " + d.CLIVersion)
	l.Debug("OS " + d.Platform + " " + d.Release)
	l.Debug("Go " + d.RuntimeVersion)

	l.Debug("==============")
	l.Debug("PROFILE CONFIG")
	l.Debug("==============")
	l.Debug(d.ProfileConfig)
}
