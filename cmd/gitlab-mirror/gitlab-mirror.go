// Package main provides the gitlab-mirror command-line tool for cloning or
// updating every repository under one or more GitLab groups.
// Copyright (C) 2021  Sylvain Gaunet

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sgaunet/gitlab-mirror/pkg/app"
	"github.com/sgaunet/gitlab-mirror/pkg/config"
	"github.com/sgaunet/gitlab-mirror/pkg/gitlab"
)

var version = "development"

// cliFlags holds command-line flag values.
type cliFlags struct {
	gitlabURL       string
	token           string
	groupIDs        string
	dest            string
	useSSH          bool
	parallel        int
	includeArchived bool
}

func printVersion() {
	fmt.Println(version)
}

func printConfiguration() {
	c, err := config.NewConfigFromEnv()
	if err != nil {
		c = &config.Config{}
	}
	c.Usage()

	fmt.Println("--------------------------------------------------")
	fmt.Println("Gitlab-mirror configuration:")
	fmt.Print(c.Redacted())
	os.Exit(0)
}

func loadConfiguration(cfgFile string) *config.Config {
	var cfg *config.Config
	var err error

	if len(cfgFile) > 0 {
		cfg, err = config.NewConfigFromFile(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config file: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg, err = config.NewConfigFromEnv()
		if err != nil {
			// If env loading fails, start with defaults; CLI overrides may fill the rest
			cfg = &config.Config{
				GitlabURI:   gitlab.GitlabBaseURL,
				DestDir:     ".",
				Parallelism: 1,
			}
		}
	}
	return cfg
}

// applyCliOverrides applies command-line flag values to the configuration.
func applyCliOverrides(cfg *config.Config, flags cliFlags) error {
	if flags.gitlabURL != "" {
		cfg.GitlabURI = flags.gitlabURL
	}
	if flags.token != "" {
		cfg.GitlabToken = flags.token
	}
	if flags.groupIDs != "" {
		ids, err := parseGroupIDs(flags.groupIDs)
		if err != nil {
			return err
		}
		cfg.GroupIDs = ids
	}
	if flags.dest != "" {
		cfg.DestDir = flags.dest
	}
	if flags.useSSH {
		cfg.UseSSH = true
	}
	if flags.parallel > 0 {
		cfg.Parallelism = flags.parallel
	}
	if flags.includeArchived {
		cfg.IncludeArchived = true
	}
	return nil
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gitlab-mirror [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Clone or pull all GitLab repos under one or more groups\n")
		fmt.Fprintf(os.Stderr, "(including nested subgroups) into folders by namespace\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  # Mirror one group into the current directory\n")
		fmt.Fprintf(os.Stderr, "  gitlab-mirror --group-ids 123\n\n")
		fmt.Fprintf(os.Stderr, "  # Mirror several groups over SSH, 4 repos at a time\n")
		fmt.Fprintf(os.Stderr, "  gitlab-mirror --group-ids '123,my-group/subgroup' --use-ssh --parallel 4 --dest /repos\n\n")
		fmt.Fprintf(os.Stderr, "  # Override config file values\n")
		fmt.Fprintf(os.Stderr, "  gitlab-mirror -c config.yaml --dest /repos\n\n")
		fmt.Fprintf(os.Stderr, "CONFIGURATION PRECEDENCE:\n")
		fmt.Fprintf(os.Stderr, "  CLI flags > Config file > Environment variables\n\n")
		fmt.Fprintf(os.Stderr, "REQUIRED SETTINGS:\n")
		fmt.Fprintf(os.Stderr, "  - GitLab Token: GITLAB_TOKEN env var, --token or gitlabToken in config\n")
		fmt.Fprintf(os.Stderr, "  - Groups: --group-ids (IDs or full paths, or in config/env)\n")
	}
}

//nolint:funlen // Main function complexity is acceptable for CLI entry point
func main() {
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	flag.StringVar(configFile, "c", "", "Path to configuration file (YAML) (shorthand)")

	gitlabURL := flag.String("gitlab-url", "", "GitLab base URL (default: https://gitlab.com)")
	token := flag.String("token", "", "Personal access token with read_api/read_repository scope")
	groupIDs := flag.String("group-ids", "", "Group IDs or full paths, comma or space separated")
	dest := flag.String("dest", "", "Destination directory to clone into (default: current directory)")
	useSSH := flag.Bool("use-ssh", false, "Use SSH clone URLs instead of HTTP ones")
	parallel := flag.Int("parallel", 0, "Number of concurrent clone/pull operations (default: 1)")
	includeArchived := flag.Bool("include-archived", false, "Also mirror archived projects")

	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.BoolVar(showVersion, "v", false, "Show version and exit (shorthand)")
	showHelp := flag.Bool("help", false, "Show help and exit")
	flag.BoolVar(showHelp, "h", false, "Show help and exit (shorthand)")
	printCfg := flag.Bool("cfg", false, "Print configuration and exit")

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *printCfg {
		printConfiguration()
	}

	cfg := loadConfiguration(*configFile)

	flags := cliFlags{
		gitlabURL:       *gitlabURL,
		token:           *token,
		groupIDs:        *groupIDs,
		dest:            *dest,
		useSSH:          *useSSH,
		parallel:        *parallel,
		includeArchived: *includeArchived,
	}
	if err := applyCliOverrides(cfg, flags); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flags: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation failed: %v\n", err)
		os.Exit(1)
	}

	mirror, err := app.NewApp(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	l := initTrace(os.Getenv("DEBUGLEVEL"), cfg.NoLogTime)
	mirror.SetLogger(l)

	if err := mirror.Run(context.Background()); err != nil {
		l.Error("error(s) occurred", "error", err)
		os.Exit(1)
	}
}
