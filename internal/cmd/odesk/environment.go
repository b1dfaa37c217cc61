package main

//
// Shared state of the subcommands
//

import (
	"errors"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/odesk/odesk-go/internal/config"
	"github.com/odesk/odesk-go/internal/model"
	"github.com/odesk/odesk-go/internal/must"
	"github.com/odesk/odesk-go/internal/oauthclient"
)

// ErrInvalidParam indicates that a --param value is not in KEY=VALUE format.
var ErrInvalidParam = errors.New("param must be in KEY=VALUE format")

// environment contains what subcommands need to run.
type environment struct {
	logger  *log.Logger
	options *Options
	stdout  io.Writer
}

// newClient creates the API client from the config file and the options.
func (env *environment) newClient() (*oauthclient.Client, error) {
	path := env.options.ConfigFile
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	env.logger.Debugf("odesk: reading config from %s", path)
	cfg, err := config.ReadConfig(path)
	if err != nil {
		return nil, err
	}
	clientConfig := cfg.ClientConfig()
	if env.options.BaseURL != "" {
		clientConfig.BaseURL = env.options.BaseURL
	}
	clientConfig.LogBody = env.options.LogBody
	clientConfig.Logger = env.logger
	return oauthclient.New(clientConfig)
}

// params parses the --param flags.
func (env *environment) params() (model.Params, error) {
	return parseParams(env.options.Params)
}

// parseParams converts a list of KEY=VALUE strings to [model.Params]. When a
// key appears more than once, the last value wins.
func parseParams(values []string) (model.Params, error) {
	out := model.Params{}
	for _, value := range values {
		key, val, found := strings.Cut(value, "=")
		if !found || key == "" {
			return nil, ErrInvalidParam
		}
		out[key] = val
	}
	return out, nil
}

// print writes the indented JSON result to stdout.
func (env *environment) print(result model.Result) {
	must.Fprintf(env.stdout, "%s\n", string(must.MarshalAndIndentJSON(result, "", "  ")))
}
