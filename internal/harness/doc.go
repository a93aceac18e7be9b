// Package harness runs end-to-end slf scenarios described in YAML.
//
// # Scenario Format
//
//	name: begin_filter
//	description: "Lines before the begin bound are dropped"
//	now: "2024-01-01T00:00:00Z"
//	file:
//	  - "2024-02-01 00:00: b"
//	  - "2024-01-01 00:00: a"
//	steps:
//	  - query:
//	      begin: "2024-01-15 00:00"
//	    expect:
//	      - "2024-02-01 00:00: b"
//	  - advance: 1h
//	    log: "hello #work"
//	expect_file:
//	  - "2024-01-01 01:00: hello #work"
//	  - "2024-02-01 00:00: b"
//	  - "2024-01-01 00:00: a"
//
// Omitting file starts without a log file. Each step does exactly one of
// log, query or init. expect lists the query output (an empty list asserts no
// output); expect_error asserts the step fails with a message containing the
// given text.
//
// # Deterministic Testing
//
// Every scenario runs in its own directory against a testutil.FixedClock
// set to now, moved only by advance. The harness drives the same packages
// the CLI uses (config, logfile, query), so a scenario is a specification
// of observable behavior.
package harness
