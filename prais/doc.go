/*
The package prais implements the serial protocol of the Prais RDS coder mod. 735 (and likely mod. 732).

Every request is a frame that starts with a SYN/SOH header, carries the unit address and an ASCII sequence digit,
and wraps one message between DLE STX and DLE ETX, followed by a two digit ASCII checksum. The unit answers every
request that does not carry the no-reply flag with an ACK handshake, optionally followed by a reply frame, which
the host confirms with an ACK of its own.

Restrictions:
Only one programme is supported. Reading the RadioText and the real time clock is not supported by the unit.

*/
package prais
