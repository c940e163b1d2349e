// Package cli implements the vinv command-line interface.
//
// The command tree follows the Ansible dynamic-inventory contract: the
// default list subcommand prints the full inventory document for all
// Vagrant-managed hosts, and the host subcommand prints the variables of a
// single host. A browse subcommand provides an interactive host picker, and
// version prints build metadata.
//
// Global flag groups configure logging (--log-*) and, when built with the
// pprof tag, runtime profiling (--pprof-*). The --root flag selects the
// directory containing the Vagrantfile that `vagrant ssh-config` is run in.
package cli
