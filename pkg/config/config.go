// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	defaultLocalConfigFile = "config.yml"
)

type Configuration struct {
	// The network interface and port used to serve client requests.
	Network NetworkConf
	// Server logging level.
	LogLevel string
	// Where the marketplace keeps its tables.
	Store StoreConf
	// Platform-wide marketplace settings.
	Marketplace MarketplaceConf
	// How royalties are resolved for custodians.
	Royalty RoyaltyConf
}

// NetworkConf holds the listen address and port of an endpoint.
// See `net.Listen(network, address string)`. The `address` parameter will be the `Address`:`Port` defined below.
type NetworkConf struct {
	Address string
	Port    uint32
}

// StoreConf points at the badger directory. An empty Dir keeps the store in memory,
// which is only useful for tests and demos.
type StoreConf struct {
	Dir string
}

type MarketplaceConf struct {
	// Operator is the platform operator address: it enables applications and receives gratitude.
	Operator string
	// Eligibility selects how an application qualifies for deposits and purchases:
	// "enablement" (default) or "fee-rate".
	Eligibility string
	// WriteOnceSettings locks the fee rate and the seller-approval requirement once set.
	WriteOnceSettings bool
	// CurrencyDecimals is used when amounts are rendered for display.
	CurrencyDecimals int32
}

// RoyaltyConf configures the royalty oracle. With an Endpoint the oracle is remote and
// cached for CacheTTL; otherwise the Static rules apply.
type RoyaltyConf struct {
	Endpoint string
	Retries  int
	Timeout  time.Duration
	CacheTTL time.Duration
	Static   []StaticRoyaltyConf
}

// StaticRoyaltyConf pays Rate/255 of the proceeds of every sale of a Custodian's units to Recipient.
type StaticRoyaltyConf struct {
	Custodian string
	Recipient string
	Rate      uint8
}

// Read reads configurations from the config file and returns the config
func Read(configFilePath string) (*Configuration, error) {
	if configFilePath == "" {
		return nil, errors.New("path to the configuration file is empty")
	}

	fileInfo, err := os.Stat(configFilePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read the status of the configuration path: '%s'", configFilePath)
	}

	fileName := configFilePath
	if fileInfo.IsDir() {
		fileName = path.Join(configFilePath, defaultLocalConfigFile)
	}

	conf, err := readLocalConfig(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read the configuration from: '%s'", fileName)
	}

	return conf, nil
}

func readLocalConfig(localConfigFile string) (*Configuration, error) {
	if localConfigFile == "" {
		return nil, errors.New("path to the configuration file is empty")
	}

	v := viper.New()
	v.SetConfigFile(localConfigFile)

	v.SetDefault("marketplace.eligibility", "enablement")
	v.SetDefault("marketplace.currencyDecimals", 18)
	v.SetDefault("royalty.retries", 3)
	v.SetDefault("royalty.timeout", 5*time.Second)
	v.SetDefault("royalty.cacheTTL", time.Minute)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}

	conf := &Configuration{}
	if err := v.UnmarshalExact(conf); err != nil {
		return nil, errors.Wrapf(err, "unable to unmarshal config file: '%s' into struct", localConfigFile)
	}

	return conf, nil
}
