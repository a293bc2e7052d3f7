// Package dimacs reads and writes the line-oriented text formats used by
// token-jumping instances and their answers.
//
// Formats (vertex ids are 1-based on the wire):
//
//	.col   c <comment>
//	       p [kind] <n> [<m>]
//	       e <u> <v>
//
//	.dat   s <ids...>
//	       t <ids...>
//
//	answer c model ISR_TJ
//	       s <ids...>
//	       t <ids...>
//	       a YES | a NO
//	       a <ids...>          one line per path step, YES only
//
// All three share one participle grammar: a line is a keyword, an optional
// word and a run of integers. Comment lines (a lone "c" or "c" followed by a
// blank) are dropped by the lexer. Shape checks per format run after
// parsing and report the offending line position.
//
// Col.Graph skips edges whose endpoints lie outside [1, n] and reports how
// many it skipped, so sloppy benchmark files still load.
package dimacs
