// Package testutil provides test fixtures shared across packages.
//
// Fixtures are embedded using go:embed:
//
//	fixtures/ip_addr_br0.txt      output of "ip -4 addr show br0" with two addresses
//	fixtures/ip_addr_no_inet.txt  output for a bridge without IPv4 addresses
//	fixtures/valid_config.toml    a complete, valid config file
//	fixtures/invalid_config.toml  a config file that fails validation
//
// Text fixtures are returned as strings; config fixtures can be written to a
// temporary directory for code that loads from a path:
//
//	path := testutil.WriteFixture(t, "valid_config.toml")
//	cfg, err := config.Load(path)
package testutil
