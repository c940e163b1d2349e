// Package cmd implements the vinv subcommands: list, host, browse, and
// version.
//
// The list and host commands implement the two entry points of the Ansible
// dynamic-inventory protocol. Both query `vagrant ssh-config` in the
// configured root directory, parse its output into host records, and print
// JSON (or YAML) on stdout.
package cmd
