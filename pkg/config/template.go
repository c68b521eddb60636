package config

// Template returns a commented starter configuration file.
func Template() []byte {
	return []byte(`# mdreflow configuration
#
# Tables wider than the available terminal width are reflowed into
# vertically stacked "key: value" cards. Everything here is optional;
# unset keys use the defaults shown.

# Force the available width in columns. 0 auto-detects from the terminal
# (and passes every table through when no terminal width is known).
width: 0

# Safety margin subtracted from a detected terminal width.
margin: 10

# Character drawn as the horizontal rule between stacked cards.
rule_char: "─"

# Width cache generation bounds: the cache is cleared wholesale once it
# holds this many entries or after this many formatting operations,
# whichever comes first.
cache_entries: 4096
cache_operations: 256
`)
}
