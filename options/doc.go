// Package options holds the tunables of the resolution engine.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags of the host application
//  2. Environment variables (PARAM_SUPPLIER_DELIMITER, PARAM_SUPPLIER_QUEUE_CAPACITY, PARAM_SUPPLIER_DEBUG)
//  3. YAML options file
//  4. Hardcoded defaults (see Default)
//
// # File Format
//
//	delimiter: ":"
//	queue_capacity: 100
//	fallback: [timestamp, timeofday, date, time, passthrough]
//	timestamp_layouts: ["2006-01-02 15:04:05.999999999"]
//	time_layouts: ["15:04:05"]
//	date_layouts: ["2006-01-02"]
//	datetime_layouts: ["2006-01-02T15:04:05Z07:00"]
//	debug: false
package options
