// Package parser provides generic parsing utilities for JSON and XML data.
//
// This package contains reusable parsing functions shared across the
// engine: typed JSON and XML decoding, plus tolerant extraction of a JSON
// object from model output that may wrap it in markdown fences or
// surrounding prose.
package parser
