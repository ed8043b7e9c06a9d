/*
The package uecp implements the Universal Encoder Communication Protocol [UECP] for RDS encoders.

Every command is one data frame: the site and encoder address, a sequence number, the message length, and one
message element, protected by a CRC. The frame is byte stuffed and wrapped between a start and a stop byte.

Restrictions:
Only the write direction is supported. The encoder is never asked for a reply, so all get operations return
ErrUnsupported. The sequence number is always 0 (disabled).

*/
package uecp
