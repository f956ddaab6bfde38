// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

// Package catalog provides the seed catalog and its startup validation.
//
// The catalog is fixed for the lifetime of the process: ids, titles,
// categories and content never change once the store has been built from
// it. Only click counters move, and they are owned by internal/store.
package catalog

import (
	"errors"
	"fmt"

	"github.com/tomtom215/searchrec/internal/models"
)

// ErrInvalidCatalog is returned when a catalog violates an invariant.
// It is fatal at startup.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Seed returns a fresh copy of the built-in catalog.
func Seed() []models.Item {
	return []models.Item{
		{ID: 1, Title: "Python编程入门", Category: "编程", Content: "Python基础教程", ClickCount: 150},
		{ID: 2, Title: "Java高级特性", Category: "编程", Content: "Java深入学习", ClickCount: 120},
		{ID: 3, Title: "JavaScript异步编程", Category: "编程", Content: "Promise和async/await", ClickCount: 180},
		{ID: 4, Title: "数据结构与算法", Category: "计算机基础", Content: "常用算法实现", ClickCount: 200},
		{ID: 5, Title: "机器学习基础", Category: "人工智能", Content: "监督学习和无监督学习", ClickCount: 250},
		{ID: 6, Title: "深度学习实战", Category: "人工智能", Content: "TensorFlow和PyTorch", ClickCount: 300},
		{ID: 7, Title: "MySQL数据库优化", Category: "数据库", Content: "索引和查询优化", ClickCount: 100},
		{ID: 8, Title: "Redis缓存设计", Category: "数据库", Content: "高性能缓存架构", ClickCount: 130},
	}
}

// Validate checks that items is non-empty, that every id is positive and
// unique, and that no click count is negative.
func Validate(items []models.Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidCatalog)
	}

	seen := make(map[int]struct{}, len(items))
	for i := range items {
		item := &items[i]
		if item.ID <= 0 {
			return fmt.Errorf("%w: item at position %d has non-positive id %d", ErrInvalidCatalog, i, item.ID)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidCatalog, item.ID)
		}
		if item.ClickCount < 0 {
			return fmt.Errorf("%w: item %d has negative click_count %d", ErrInvalidCatalog, item.ID, item.ClickCount)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
