// Package commands defines the diceroller CLI.
//
// Commands
//
//   - serve   Run the web dice roller
//   - roll    Roll one or more NdF[+/-M] notations once
//   - sim     Print the distribution of a notation over many rolls
//
// serve reads config from --config and DICEROLLER_* environment variables.
// roll and sim need no config and never wait on the roll animation delay.
package commands
