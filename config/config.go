// MIT License
//
// Copyright (c) 2020 codingfinest
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

//Package config resolves the connection settings of a graphwalk client.
//
//Settings are resolved in this order, highest precedence first:
//
// 1. values set explicitly by the caller after loading (for example CLI flags)
// 2. the YAML file passed to Load
// 3. the environment: NEO4J (host or URI) and NEO4J_AUTH ("user/password" or "none")
// 4. Default()
//
//The environment is read through the lookup function handed to Load, never
//from the process directly.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultURI = "bolt://localhost:7687"

	envHost = "NEO4J"
	envAuth = "NEO4J_AUTH"
)

var validate = validator.New()

//Config holds the settings needed to reach the database.
type Config struct {
	URI      string `yaml:"uri" validate:"required,uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password" validate:"required_with=Username"`
	Realm    string `yaml:"realm"`

	//MaxConnectionPoolSize of zero keeps the driver default.
	MaxConnectionPoolSize int `yaml:"max_connection_pool_size" validate:"gte=0"`

	//TransactionTimeout of zero leaves the server default in place.
	TransactionTimeout time.Duration `yaml:"transaction_timeout" validate:"gte=0"`

	//LiteralEdgeProperties writes relationship properties into the query text
	//instead of binding them as parameters.
	LiteralEdgeProperties bool `yaml:"literal_edge_properties"`
}

func Default() Config {
	return Config{URI: DefaultURI}
}

//Load resolves a Config from the environment and an optional YAML file.
//A nil getenv disables the environment layer.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if getenv != nil {
		if host := getenv(envHost); host != "" {
			cfg.URI = NormalizeURI(host)
		}
		if auth := getenv(envAuth); auth != "" && auth != "none" {
			user, password, ok := strings.Cut(auth, "/")
			if !ok {
				return Config{}, fmt.Errorf("config: %s must be \"user/password\" or \"none\"", envAuth)
			}
			cfg.Username, cfg.Password = user, password
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		cfg.URI = NormalizeURI(cfg.URI)
	}

	return cfg, nil
}

//NormalizeURI turns a bare "host:port" into a bolt URI.
func NormalizeURI(uri string) string {
	if uri == "" || strings.Contains(uri, "://") {
		return uri
	}
	return "bolt://" + uri
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
