// Package guide turns an environment descriptor into SSH connection
// instructions: the jump host to reach, a one-shot ssh command, and an
// ssh_config block defining a jump alias and an environment alias.
//
// Every function in this package is pure. Equal inputs produce
// byte-identical output, nothing is read from or written to disk or the
// network, and all functions are safe for concurrent use.
//
// # Connection shape
//
// Environments sit behind a worker server and expose sshd on a port bound
// to the worker's loopback interface, so connecting is always a double hop:
//
//	you -> <host-ssh-user>@<jump host>:22 -> <container user>@127.0.0.1:<ssh_port>
//
// The host-side SSH user is not known to the registry and is left as the
// literal HostUserPlaceholder for the operator to fill in.
package guide
