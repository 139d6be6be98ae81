// Copyright 2026 The regexlex Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wizard04wsu/regexlex/host"
	"github.com/wizard04wsu/regexlex/scanner"
	"github.com/wizard04wsu/regexlex/token"
)

// config is the content of a -config file:
//
//	strict_properties: true
//	disabled: [BeginCountQuantifier]
//
type config struct {
	StrictProperties bool     `yaml:"strict_properties"`
	Disabled         []string `yaml:"disabled"`
}

func loadConfig(name string) (*config, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	c, err := parseConfig(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

func parseConfig(b []byte) (*config, error) {
	var c config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if _, err := c.mask(); err != nil {
		return nil, err
	}
	return &c, nil
}

// mask returns the set of kinds that are not disabled.
func (c *config) mask() (token.ValidSet, error) {
	m := token.All
	for _, name := range c.Disabled {
		k, ok := token.ParseKind(name)
		if !ok {
			return 0, fmt.Errorf("disabled: unknown token kind %q", name)
		}
		m = m.Without(k)
	}
	return m, nil
}

func (c *config) options() []host.Option {
	m, err := c.mask()
	if err != nil {
		// validated in parseConfig
		panic(err)
	}
	return []host.Option{
		host.Scanner(scanner.New(scanner.StrictProperties(c.StrictProperties))),
		host.Mask(m),
	}
}
