// Package inventory derives an Ansible dynamic inventory from parsed
// `vagrant ssh-config` host records.
//
// Hosts are grouped by role conventions on their names (control-NN,
// worker-NNN) plus the datacenter group dc=vagrantdc, and each host gets
// SSH connection variables under _meta.hostvars. Mantl-specific variables
// can be layered on top, and additional groups can be defined by rule
// expressions evaluated against each host's record fields.
package inventory
