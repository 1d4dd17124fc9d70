// Package cgtimport provides the normalized model of broker transactions fed
// to a capital gains computation.
//
// Each broker export format has its own parser package (see
// [github.com/etnz/cgtimport/computershare]) that turns raw rows into
// [BrokerTransaction] values. Parsers also synthesize the bookkeeping entries
// a broker leaves implicit, so that the cash side of every purchase is
// recorded and a running [Balance] stays consistent.
//
// The package also handles:
//   - Ticker renames: mapping the symbols found in exports to canonical tickers.
//   - Encoding: a human readable JSONL format, one transaction per line.
//   - Filtering: selecting transactions with JSONPath filter expressions.
//
// Nothing here performs I/O beyond the reader and writer it is given, and no
// result is persisted: callers decide what to do with the transactions.
package cgtimport
