// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/searchrec/internal/models"
)

// LoadFile reads a catalog from a YAML file of the form
//
//	items:
//	  - id: 1
//	    title: Python编程入门
//	    category: 编程
//	    content: Python基础教程
//	    click_count: 150
//
// The returned items are validated; file order becomes catalog order.
func LoadFile(path string) ([]models.Item, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load catalog file %s: %w", path, err)
	}

	var items []models.Item
	if err := k.UnmarshalWithConf("items", &items, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}

	if err := Validate(items); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return items, nil
}

// Load returns the catalog from path, or the built-in seed when path is empty.
func Load(path string) ([]models.Item, error) {
	if path == "" {
		return Seed(), nil
	}
	return LoadFile(path)
}
