/*
The package rds contains the protocol independent parts of controlling an RDS encoder: the values that can be
read from and written to an encoder, the errors every operation may return, and the Handler contract that the
protocol implementations fulfil. It is based on:
  [IEC 62106] IEC 62106:2015 Specification of the radio data system (RDS) for VHF/FM sound broadcasting
  [UECP]      EBU SPB 490, Universal Encoder Communication Protocol V7.05

Abbreviations:
PI:   Programme Identification
PS:   Programme Service name
RT:   RadioText
DI:   Decoder Identification
PTY:  Programme Type
PTYN: Programme Type Name
TA:   Traffic Announcement
TP:   Traffic Programme
CT:   Clock Time
DSN:  Data Set Number
PSN:  Programme Service Number

*/
package rds
