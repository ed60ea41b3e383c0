package cpu

import "github.com/tiago/go-pocket/pocket/bit"

//RLC B
//#CB0x00:
func opcodeCB0x00(cpu *CPU) int {
	cpu.rlc(&cpu.b)
	return 8
}

//RLC C
//#CB0x01:
func opcodeCB0x01(cpu *CPU) int {
	cpu.rlc(&cpu.c)
	return 8
}

//RLC D
//#CB0x02:
func opcodeCB0x02(cpu *CPU) int {
	cpu.rlc(&cpu.d)
	return 8
}

//RLC E
//#CB0x03:
func opcodeCB0x03(cpu *CPU) int {
	cpu.rlc(&cpu.e)
	return 8
}

//RLC H
//#CB0x04:
func opcodeCB0x04(cpu *CPU) int {
	cpu.rlc(&cpu.h)
	return 8
}

//RLC L
//#CB0x05:
func opcodeCB0x05(cpu *CPU) int {
	cpu.rlc(&cpu.l)
	return 8
}

//RLC (HL)
//#CB0x06:
func opcodeCB0x06(cpu *CPU) int {
	value := cpu.readHL()
	cpu.rlc(&value)
	cpu.writeHL(value)
	return 16
}

//RLC A
//#CB0x07:
func opcodeCB0x07(cpu *CPU) int {
	cpu.rlc(&cpu.a)
	return 8
}

//RRC B
//#CB0x08:
func opcodeCB0x08(cpu *CPU) int {
	cpu.rrc(&cpu.b)
	return 8
}

//RRC C
//#CB0x09:
func opcodeCB0x09(cpu *CPU) int {
	cpu.rrc(&cpu.c)
	return 8
}

//RRC D
//#CB0x0A:
func opcodeCB0x0A(cpu *CPU) int {
	cpu.rrc(&cpu.d)
	return 8
}

//RRC E
//#CB0x0B:
func opcodeCB0x0B(cpu *CPU) int {
	cpu.rrc(&cpu.e)
	return 8
}

//RRC H
//#CB0x0C:
func opcodeCB0x0C(cpu *CPU) int {
	cpu.rrc(&cpu.h)
	return 8
}

//RRC L
//#CB0x0D:
func opcodeCB0x0D(cpu *CPU) int {
	cpu.rrc(&cpu.l)
	return 8
}

//RRC (HL)
//#CB0x0E:
func opcodeCB0x0E(cpu *CPU) int {
	value := cpu.readHL()
	cpu.rrc(&value)
	cpu.writeHL(value)
	return 16
}

//RRC A
//#CB0x0F:
func opcodeCB0x0F(cpu *CPU) int {
	cpu.rrc(&cpu.a)
	return 8
}

//RL B
//#CB0x10:
func opcodeCB0x10(cpu *CPU) int {
	cpu.rl(&cpu.b)
	return 8
}

//RL C
//#CB0x11:
func opcodeCB0x11(cpu *CPU) int {
	cpu.rl(&cpu.c)
	return 8
}

//RL D
//#CB0x12:
func opcodeCB0x12(cpu *CPU) int {
	cpu.rl(&cpu.d)
	return 8
}

//RL E
//#CB0x13:
func opcodeCB0x13(cpu *CPU) int {
	cpu.rl(&cpu.e)
	return 8
}

//RL H
//#CB0x14:
func opcodeCB0x14(cpu *CPU) int {
	cpu.rl(&cpu.h)
	return 8
}

//RL L
//#CB0x15:
func opcodeCB0x15(cpu *CPU) int {
	cpu.rl(&cpu.l)
	return 8
}

//RL (HL)
//#CB0x16:
func opcodeCB0x16(cpu *CPU) int {
	value := cpu.readHL()
	cpu.rl(&value)
	cpu.writeHL(value)
	return 16
}

//RL A
//#CB0x17:
func opcodeCB0x17(cpu *CPU) int {
	cpu.rl(&cpu.a)
	return 8
}

//RR B
//#CB0x18:
func opcodeCB0x18(cpu *CPU) int {
	cpu.rr(&cpu.b)
	return 8
}

//RR C
//#CB0x19:
func opcodeCB0x19(cpu *CPU) int {
	cpu.rr(&cpu.c)
	return 8
}

//RR D
//#CB0x1A:
func opcodeCB0x1A(cpu *CPU) int {
	cpu.rr(&cpu.d)
	return 8
}

//RR E
//#CB0x1B:
func opcodeCB0x1B(cpu *CPU) int {
	cpu.rr(&cpu.e)
	return 8
}

//RR H
//#CB0x1C:
func opcodeCB0x1C(cpu *CPU) int {
	cpu.rr(&cpu.h)
	return 8
}

//RR L
//#CB0x1D:
func opcodeCB0x1D(cpu *CPU) int {
	cpu.rr(&cpu.l)
	return 8
}

//RR (HL)
//#CB0x1E:
func opcodeCB0x1E(cpu *CPU) int {
	value := cpu.readHL()
	cpu.rr(&value)
	cpu.writeHL(value)
	return 16
}

//RR A
//#CB0x1F:
func opcodeCB0x1F(cpu *CPU) int {
	cpu.rr(&cpu.a)
	return 8
}

//SLA B
//#CB0x20:
func opcodeCB0x20(cpu *CPU) int {
	cpu.sla(&cpu.b)
	return 8
}

//SLA C
//#CB0x21:
func opcodeCB0x21(cpu *CPU) int {
	cpu.sla(&cpu.c)
	return 8
}

//SLA D
//#CB0x22:
func opcodeCB0x22(cpu *CPU) int {
	cpu.sla(&cpu.d)
	return 8
}

//SLA E
//#CB0x23:
func opcodeCB0x23(cpu *CPU) int {
	cpu.sla(&cpu.e)
	return 8
}

//SLA H
//#CB0x24:
func opcodeCB0x24(cpu *CPU) int {
	cpu.sla(&cpu.h)
	return 8
}

//SLA L
//#CB0x25:
func opcodeCB0x25(cpu *CPU) int {
	cpu.sla(&cpu.l)
	return 8
}

//SLA (HL)
//#CB0x26:
func opcodeCB0x26(cpu *CPU) int {
	value := cpu.readHL()
	cpu.sla(&value)
	cpu.writeHL(value)
	return 16
}

//SLA A
//#CB0x27:
func opcodeCB0x27(cpu *CPU) int {
	cpu.sla(&cpu.a)
	return 8
}

//SRA B
//#CB0x28:
func opcodeCB0x28(cpu *CPU) int {
	cpu.sra(&cpu.b)
	return 8
}

//SRA C
//#CB0x29:
func opcodeCB0x29(cpu *CPU) int {
	cpu.sra(&cpu.c)
	return 8
}

//SRA D
//#CB0x2A:
func opcodeCB0x2A(cpu *CPU) int {
	cpu.sra(&cpu.d)
	return 8
}

//SRA E
//#CB0x2B:
func opcodeCB0x2B(cpu *CPU) int {
	cpu.sra(&cpu.e)
	return 8
}

//SRA H
//#CB0x2C:
func opcodeCB0x2C(cpu *CPU) int {
	cpu.sra(&cpu.h)
	return 8
}

//SRA L
//#CB0x2D:
func opcodeCB0x2D(cpu *CPU) int {
	cpu.sra(&cpu.l)
	return 8
}

//SRA (HL)
//#CB0x2E:
func opcodeCB0x2E(cpu *CPU) int {
	value := cpu.readHL()
	cpu.sra(&value)
	cpu.writeHL(value)
	return 16
}

//SRA A
//#CB0x2F:
func opcodeCB0x2F(cpu *CPU) int {
	cpu.sra(&cpu.a)
	return 8
}

//SWAP B
//#CB0x30:
func opcodeCB0x30(cpu *CPU) int {
	cpu.swap(&cpu.b)
	return 8
}

//SWAP C
//#CB0x31:
func opcodeCB0x31(cpu *CPU) int {
	cpu.swap(&cpu.c)
	return 8
}

//SWAP D
//#CB0x32:
func opcodeCB0x32(cpu *CPU) int {
	cpu.swap(&cpu.d)
	return 8
}

//SWAP E
//#CB0x33:
func opcodeCB0x33(cpu *CPU) int {
	cpu.swap(&cpu.e)
	return 8
}

//SWAP H
//#CB0x34:
func opcodeCB0x34(cpu *CPU) int {
	cpu.swap(&cpu.h)
	return 8
}

//SWAP L
//#CB0x35:
func opcodeCB0x35(cpu *CPU) int {
	cpu.swap(&cpu.l)
	return 8
}

//SWAP (HL)
//#CB0x36:
func opcodeCB0x36(cpu *CPU) int {
	value := cpu.readHL()
	cpu.swap(&value)
	cpu.writeHL(value)
	return 16
}

//SWAP A
//#CB0x37:
func opcodeCB0x37(cpu *CPU) int {
	cpu.swap(&cpu.a)
	return 8
}

//SRL B
//#CB0x38:
func opcodeCB0x38(cpu *CPU) int {
	cpu.srl(&cpu.b)
	return 8
}

//SRL C
//#CB0x39:
func opcodeCB0x39(cpu *CPU) int {
	cpu.srl(&cpu.c)
	return 8
}

//SRL D
//#CB0x3A:
func opcodeCB0x3A(cpu *CPU) int {
	cpu.srl(&cpu.d)
	return 8
}

//SRL E
//#CB0x3B:
func opcodeCB0x3B(cpu *CPU) int {
	cpu.srl(&cpu.e)
	return 8
}

//SRL H
//#CB0x3C:
func opcodeCB0x3C(cpu *CPU) int {
	cpu.srl(&cpu.h)
	return 8
}

//SRL L
//#CB0x3D:
func opcodeCB0x3D(cpu *CPU) int {
	cpu.srl(&cpu.l)
	return 8
}

//SRL (HL)
//#CB0x3E:
func opcodeCB0x3E(cpu *CPU) int {
	value := cpu.readHL()
	cpu.srl(&value)
	cpu.writeHL(value)
	return 16
}

//SRL A
//#CB0x3F:
func opcodeCB0x3F(cpu *CPU) int {
	cpu.srl(&cpu.a)
	return 8
}

//BIT 0, B
//#CB0x40:
func opcodeCB0x40(cpu *CPU) int {
	cpu.bitTest(0, cpu.b)
	return 8
}

//BIT 0, C
//#CB0x41:
func opcodeCB0x41(cpu *CPU) int {
	cpu.bitTest(0, cpu.c)
	return 8
}

//BIT 0, D
//#CB0x42:
func opcodeCB0x42(cpu *CPU) int {
	cpu.bitTest(0, cpu.d)
	return 8
}

//BIT 0, E
//#CB0x43:
func opcodeCB0x43(cpu *CPU) int {
	cpu.bitTest(0, cpu.e)
	return 8
}

//BIT 0, H
//#CB0x44:
func opcodeCB0x44(cpu *CPU) int {
	cpu.bitTest(0, cpu.h)
	return 8
}

//BIT 0, L
//#CB0x45:
func opcodeCB0x45(cpu *CPU) int {
	cpu.bitTest(0, cpu.l)
	return 8
}

//BIT 0, (HL)
//#CB0x46:
func opcodeCB0x46(cpu *CPU) int {
	cpu.bitTest(0, cpu.readHL())
	return 12
}

//BIT 0, A
//#CB0x47:
func opcodeCB0x47(cpu *CPU) int {
	cpu.bitTest(0, cpu.a)
	return 8
}

//BIT 1, B
//#CB0x48:
func opcodeCB0x48(cpu *CPU) int {
	cpu.bitTest(1, cpu.b)
	return 8
}

//BIT 1, C
//#CB0x49:
func opcodeCB0x49(cpu *CPU) int {
	cpu.bitTest(1, cpu.c)
	return 8
}

//BIT 1, D
//#CB0x4A:
func opcodeCB0x4A(cpu *CPU) int {
	cpu.bitTest(1, cpu.d)
	return 8
}

//BIT 1, E
//#CB0x4B:
func opcodeCB0x4B(cpu *CPU) int {
	cpu.bitTest(1, cpu.e)
	return 8
}

//BIT 1, H
//#CB0x4C:
func opcodeCB0x4C(cpu *CPU) int {
	cpu.bitTest(1, cpu.h)
	return 8
}

//BIT 1, L
//#CB0x4D:
func opcodeCB0x4D(cpu *CPU) int {
	cpu.bitTest(1, cpu.l)
	return 8
}

//BIT 1, (HL)
//#CB0x4E:
func opcodeCB0x4E(cpu *CPU) int {
	cpu.bitTest(1, cpu.readHL())
	return 12
}

//BIT 1, A
//#CB0x4F:
func opcodeCB0x4F(cpu *CPU) int {
	cpu.bitTest(1, cpu.a)
	return 8
}

//BIT 2, B
//#CB0x50:
func opcodeCB0x50(cpu *CPU) int {
	cpu.bitTest(2, cpu.b)
	return 8
}

//BIT 2, C
//#CB0x51:
func opcodeCB0x51(cpu *CPU) int {
	cpu.bitTest(2, cpu.c)
	return 8
}

//BIT 2, D
//#CB0x52:
func opcodeCB0x52(cpu *CPU) int {
	cpu.bitTest(2, cpu.d)
	return 8
}

//BIT 2, E
//#CB0x53:
func opcodeCB0x53(cpu *CPU) int {
	cpu.bitTest(2, cpu.e)
	return 8
}

//BIT 2, H
//#CB0x54:
func opcodeCB0x54(cpu *CPU) int {
	cpu.bitTest(2, cpu.h)
	return 8
}

//BIT 2, L
//#CB0x55:
func opcodeCB0x55(cpu *CPU) int {
	cpu.bitTest(2, cpu.l)
	return 8
}

//BIT 2, (HL)
//#CB0x56:
func opcodeCB0x56(cpu *CPU) int {
	cpu.bitTest(2, cpu.readHL())
	return 12
}

//BIT 2, A
//#CB0x57:
func opcodeCB0x57(cpu *CPU) int {
	cpu.bitTest(2, cpu.a)
	return 8
}

//BIT 3, B
//#CB0x58:
func opcodeCB0x58(cpu *CPU) int {
	cpu.bitTest(3, cpu.b)
	return 8
}

//BIT 3, C
//#CB0x59:
func opcodeCB0x59(cpu *CPU) int {
	cpu.bitTest(3, cpu.c)
	return 8
}

//BIT 3, D
//#CB0x5A:
func opcodeCB0x5A(cpu *CPU) int {
	cpu.bitTest(3, cpu.d)
	return 8
}

//BIT 3, E
//#CB0x5B:
func opcodeCB0x5B(cpu *CPU) int {
	cpu.bitTest(3, cpu.e)
	return 8
}

//BIT 3, H
//#CB0x5C:
func opcodeCB0x5C(cpu *CPU) int {
	cpu.bitTest(3, cpu.h)
	return 8
}

//BIT 3, L
//#CB0x5D:
func opcodeCB0x5D(cpu *CPU) int {
	cpu.bitTest(3, cpu.l)
	return 8
}

//BIT 3, (HL)
//#CB0x5E:
func opcodeCB0x5E(cpu *CPU) int {
	cpu.bitTest(3, cpu.readHL())
	return 12
}

//BIT 3, A
//#CB0x5F:
func opcodeCB0x5F(cpu *CPU) int {
	cpu.bitTest(3, cpu.a)
	return 8
}

//BIT 4, B
//#CB0x60:
func opcodeCB0x60(cpu *CPU) int {
	cpu.bitTest(4, cpu.b)
	return 8
}

//BIT 4, C
//#CB0x61:
func opcodeCB0x61(cpu *CPU) int {
	cpu.bitTest(4, cpu.c)
	return 8
}

//BIT 4, D
//#CB0x62:
func opcodeCB0x62(cpu *CPU) int {
	cpu.bitTest(4, cpu.d)
	return 8
}

//BIT 4, E
//#CB0x63:
func opcodeCB0x63(cpu *CPU) int {
	cpu.bitTest(4, cpu.e)
	return 8
}

//BIT 4, H
//#CB0x64:
func opcodeCB0x64(cpu *CPU) int {
	cpu.bitTest(4, cpu.h)
	return 8
}

//BIT 4, L
//#CB0x65:
func opcodeCB0x65(cpu *CPU) int {
	cpu.bitTest(4, cpu.l)
	return 8
}

//BIT 4, (HL)
//#CB0x66:
func opcodeCB0x66(cpu *CPU) int {
	cpu.bitTest(4, cpu.readHL())
	return 12
}

//BIT 4, A
//#CB0x67:
func opcodeCB0x67(cpu *CPU) int {
	cpu.bitTest(4, cpu.a)
	return 8
}

//BIT 5, B
//#CB0x68:
func opcodeCB0x68(cpu *CPU) int {
	cpu.bitTest(5, cpu.b)
	return 8
}

//BIT 5, C
//#CB0x69:
func opcodeCB0x69(cpu *CPU) int {
	cpu.bitTest(5, cpu.c)
	return 8
}

//BIT 5, D
//#CB0x6A:
func opcodeCB0x6A(cpu *CPU) int {
	cpu.bitTest(5, cpu.d)
	return 8
}

//BIT 5, E
//#CB0x6B:
func opcodeCB0x6B(cpu *CPU) int {
	cpu.bitTest(5, cpu.e)
	return 8
}

//BIT 5, H
//#CB0x6C:
func opcodeCB0x6C(cpu *CPU) int {
	cpu.bitTest(5, cpu.h)
	return 8
}

//BIT 5, L
//#CB0x6D:
func opcodeCB0x6D(cpu *CPU) int {
	cpu.bitTest(5, cpu.l)
	return 8
}

//BIT 5, (HL)
//#CB0x6E:
func opcodeCB0x6E(cpu *CPU) int {
	cpu.bitTest(5, cpu.readHL())
	return 12
}

//BIT 5, A
//#CB0x6F:
func opcodeCB0x6F(cpu *CPU) int {
	cpu.bitTest(5, cpu.a)
	return 8
}

//BIT 6, B
//#CB0x70:
func opcodeCB0x70(cpu *CPU) int {
	cpu.bitTest(6, cpu.b)
	return 8
}

//BIT 6, C
//#CB0x71:
func opcodeCB0x71(cpu *CPU) int {
	cpu.bitTest(6, cpu.c)
	return 8
}

//BIT 6, D
//#CB0x72:
func opcodeCB0x72(cpu *CPU) int {
	cpu.bitTest(6, cpu.d)
	return 8
}

//BIT 6, E
//#CB0x73:
func opcodeCB0x73(cpu *CPU) int {
	cpu.bitTest(6, cpu.e)
	return 8
}

//BIT 6, H
//#CB0x74:
func opcodeCB0x74(cpu *CPU) int {
	cpu.bitTest(6, cpu.h)
	return 8
}

//BIT 6, L
//#CB0x75:
func opcodeCB0x75(cpu *CPU) int {
	cpu.bitTest(6, cpu.l)
	return 8
}

//BIT 6, (HL)
//#CB0x76:
func opcodeCB0x76(cpu *CPU) int {
	cpu.bitTest(6, cpu.readHL())
	return 12
}

//BIT 6, A
//#CB0x77:
func opcodeCB0x77(cpu *CPU) int {
	cpu.bitTest(6, cpu.a)
	return 8
}

//BIT 7, B
//#CB0x78:
func opcodeCB0x78(cpu *CPU) int {
	cpu.bitTest(7, cpu.b)
	return 8
}

//BIT 7, C
//#CB0x79:
func opcodeCB0x79(cpu *CPU) int {
	cpu.bitTest(7, cpu.c)
	return 8
}

//BIT 7, D
//#CB0x7A:
func opcodeCB0x7A(cpu *CPU) int {
	cpu.bitTest(7, cpu.d)
	return 8
}

//BIT 7, E
//#CB0x7B:
func opcodeCB0x7B(cpu *CPU) int {
	cpu.bitTest(7, cpu.e)
	return 8
}

//BIT 7, H
//#CB0x7C:
func opcodeCB0x7C(cpu *CPU) int {
	cpu.bitTest(7, cpu.h)
	return 8
}

//BIT 7, L
//#CB0x7D:
func opcodeCB0x7D(cpu *CPU) int {
	cpu.bitTest(7, cpu.l)
	return 8
}

//BIT 7, (HL)
//#CB0x7E:
func opcodeCB0x7E(cpu *CPU) int {
	cpu.bitTest(7, cpu.readHL())
	return 12
}

//BIT 7, A
//#CB0x7F:
func opcodeCB0x7F(cpu *CPU) int {
	cpu.bitTest(7, cpu.a)
	return 8
}

//RES 0, B
//#CB0x80:
func opcodeCB0x80(cpu *CPU) int {
	cpu.b = bit.Reset(0, cpu.b)
	return 8
}

//RES 0, C
//#CB0x81:
func opcodeCB0x81(cpu *CPU) int {
	cpu.c = bit.Reset(0, cpu.c)
	return 8
}

//RES 0, D
//#CB0x82:
func opcodeCB0x82(cpu *CPU) int {
	cpu.d = bit.Reset(0, cpu.d)
	return 8
}

//RES 0, E
//#CB0x83:
func opcodeCB0x83(cpu *CPU) int {
	cpu.e = bit.Reset(0, cpu.e)
	return 8
}

//RES 0, H
//#CB0x84:
func opcodeCB0x84(cpu *CPU) int {
	cpu.h = bit.Reset(0, cpu.h)
	return 8
}

//RES 0, L
//#CB0x85:
func opcodeCB0x85(cpu *CPU) int {
	cpu.l = bit.Reset(0, cpu.l)
	return 8
}

//RES 0, (HL)
//#CB0x86:
func opcodeCB0x86(cpu *CPU) int {
	cpu.writeHL(bit.Reset(0, cpu.readHL()))
	return 16
}

//RES 0, A
//#CB0x87:
func opcodeCB0x87(cpu *CPU) int {
	cpu.a = bit.Reset(0, cpu.a)
	return 8
}

//RES 1, B
//#CB0x88:
func opcodeCB0x88(cpu *CPU) int {
	cpu.b = bit.Reset(1, cpu.b)
	return 8
}

//RES 1, C
//#CB0x89:
func opcodeCB0x89(cpu *CPU) int {
	cpu.c = bit.Reset(1, cpu.c)
	return 8
}

//RES 1, D
//#CB0x8A:
func opcodeCB0x8A(cpu *CPU) int {
	cpu.d = bit.Reset(1, cpu.d)
	return 8
}

//RES 1, E
//#CB0x8B:
func opcodeCB0x8B(cpu *CPU) int {
	cpu.e = bit.Reset(1, cpu.e)
	return 8
}

//RES 1, H
//#CB0x8C:
func opcodeCB0x8C(cpu *CPU) int {
	cpu.h = bit.Reset(1, cpu.h)
	return 8
}

//RES 1, L
//#CB0x8D:
func opcodeCB0x8D(cpu *CPU) int {
	cpu.l = bit.Reset(1, cpu.l)
	return 8
}

//RES 1, (HL)
//#CB0x8E:
func opcodeCB0x8E(cpu *CPU) int {
	cpu.writeHL(bit.Reset(1, cpu.readHL()))
	return 16
}

//RES 1, A
//#CB0x8F:
func opcodeCB0x8F(cpu *CPU) int {
	cpu.a = bit.Reset(1, cpu.a)
	return 8
}

//RES 2, B
//#CB0x90:
func opcodeCB0x90(cpu *CPU) int {
	cpu.b = bit.Reset(2, cpu.b)
	return 8
}

//RES 2, C
//#CB0x91:
func opcodeCB0x91(cpu *CPU) int {
	cpu.c = bit.Reset(2, cpu.c)
	return 8
}

//RES 2, D
//#CB0x92:
func opcodeCB0x92(cpu *CPU) int {
	cpu.d = bit.Reset(2, cpu.d)
	return 8
}

//RES 2, E
//#CB0x93:
func opcodeCB0x93(cpu *CPU) int {
	cpu.e = bit.Reset(2, cpu.e)
	return 8
}

//RES 2, H
//#CB0x94:
func opcodeCB0x94(cpu *CPU) int {
	cpu.h = bit.Reset(2, cpu.h)
	return 8
}

//RES 2, L
//#CB0x95:
func opcodeCB0x95(cpu *CPU) int {
	cpu.l = bit.Reset(2, cpu.l)
	return 8
}

//RES 2, (HL)
//#CB0x96:
func opcodeCB0x96(cpu *CPU) int {
	cpu.writeHL(bit.Reset(2, cpu.readHL()))
	return 16
}

//RES 2, A
//#CB0x97:
func opcodeCB0x97(cpu *CPU) int {
	cpu.a = bit.Reset(2, cpu.a)
	return 8
}

//RES 3, B
//#CB0x98:
func opcodeCB0x98(cpu *CPU) int {
	cpu.b = bit.Reset(3, cpu.b)
	return 8
}

//RES 3, C
//#CB0x99:
func opcodeCB0x99(cpu *CPU) int {
	cpu.c = bit.Reset(3, cpu.c)
	return 8
}

//RES 3, D
//#CB0x9A:
func opcodeCB0x9A(cpu *CPU) int {
	cpu.d = bit.Reset(3, cpu.d)
	return 8
}

//RES 3, E
//#CB0x9B:
func opcodeCB0x9B(cpu *CPU) int {
	cpu.e = bit.Reset(3, cpu.e)
	return 8
}

//RES 3, H
//#CB0x9C:
func opcodeCB0x9C(cpu *CPU) int {
	cpu.h = bit.Reset(3, cpu.h)
	return 8
}

//RES 3, L
//#CB0x9D:
func opcodeCB0x9D(cpu *CPU) int {
	cpu.l = bit.Reset(3, cpu.l)
	return 8
}

//RES 3, (HL)
//#CB0x9E:
func opcodeCB0x9E(cpu *CPU) int {
	cpu.writeHL(bit.Reset(3, cpu.readHL()))
	return 16
}

//RES 3, A
//#CB0x9F:
func opcodeCB0x9F(cpu *CPU) int {
	cpu.a = bit.Reset(3, cpu.a)
	return 8
}

//RES 4, B
//#CB0xA0:
func opcodeCB0xA0(cpu *CPU) int {
	cpu.b = bit.Reset(4, cpu.b)
	return 8
}

//RES 4, C
//#CB0xA1:
func opcodeCB0xA1(cpu *CPU) int {
	cpu.c = bit.Reset(4, cpu.c)
	return 8
}

//RES 4, D
//#CB0xA2:
func opcodeCB0xA2(cpu *CPU) int {
	cpu.d = bit.Reset(4, cpu.d)
	return 8
}

//RES 4, E
//#CB0xA3:
func opcodeCB0xA3(cpu *CPU) int {
	cpu.e = bit.Reset(4, cpu.e)
	return 8
}

//RES 4, H
//#CB0xA4:
func opcodeCB0xA4(cpu *CPU) int {
	cpu.h = bit.Reset(4, cpu.h)
	return 8
}

//RES 4, L
//#CB0xA5:
func opcodeCB0xA5(cpu *CPU) int {
	cpu.l = bit.Reset(4, cpu.l)
	return 8
}

//RES 4, (HL)
//#CB0xA6:
func opcodeCB0xA6(cpu *CPU) int {
	cpu.writeHL(bit.Reset(4, cpu.readHL()))
	return 16
}

//RES 4, A
//#CB0xA7:
func opcodeCB0xA7(cpu *CPU) int {
	cpu.a = bit.Reset(4, cpu.a)
	return 8
}

//RES 5, B
//#CB0xA8:
func opcodeCB0xA8(cpu *CPU) int {
	cpu.b = bit.Reset(5, cpu.b)
	return 8
}

//RES 5, C
//#CB0xA9:
func opcodeCB0xA9(cpu *CPU) int {
	cpu.c = bit.Reset(5, cpu.c)
	return 8
}

//RES 5, D
//#CB0xAA:
func opcodeCB0xAA(cpu *CPU) int {
	cpu.d = bit.Reset(5, cpu.d)
	return 8
}

//RES 5, E
//#CB0xAB:
func opcodeCB0xAB(cpu *CPU) int {
	cpu.e = bit.Reset(5, cpu.e)
	return 8
}

//RES 5, H
//#CB0xAC:
func opcodeCB0xAC(cpu *CPU) int {
	cpu.h = bit.Reset(5, cpu.h)
	return 8
}

//RES 5, L
//#CB0xAD:
func opcodeCB0xAD(cpu *CPU) int {
	cpu.l = bit.Reset(5, cpu.l)
	return 8
}

//RES 5, (HL)
//#CB0xAE:
func opcodeCB0xAE(cpu *CPU) int {
	cpu.writeHL(bit.Reset(5, cpu.readHL()))
	return 16
}

//RES 5, A
//#CB0xAF:
func opcodeCB0xAF(cpu *CPU) int {
	cpu.a = bit.Reset(5, cpu.a)
	return 8
}

//RES 6, B
//#CB0xB0:
func opcodeCB0xB0(cpu *CPU) int {
	cpu.b = bit.Reset(6, cpu.b)
	return 8
}

//RES 6, C
//#CB0xB1:
func opcodeCB0xB1(cpu *CPU) int {
	cpu.c = bit.Reset(6, cpu.c)
	return 8
}

//RES 6, D
//#CB0xB2:
func opcodeCB0xB2(cpu *CPU) int {
	cpu.d = bit.Reset(6, cpu.d)
	return 8
}

//RES 6, E
//#CB0xB3:
func opcodeCB0xB3(cpu *CPU) int {
	cpu.e = bit.Reset(6, cpu.e)
	return 8
}

//RES 6, H
//#CB0xB4:
func opcodeCB0xB4(cpu *CPU) int {
	cpu.h = bit.Reset(6, cpu.h)
	return 8
}

//RES 6, L
//#CB0xB5:
func opcodeCB0xB5(cpu *CPU) int {
	cpu.l = bit.Reset(6, cpu.l)
	return 8
}

//RES 6, (HL)
//#CB0xB6:
func opcodeCB0xB6(cpu *CPU) int {
	cpu.writeHL(bit.Reset(6, cpu.readHL()))
	return 16
}

//RES 6, A
//#CB0xB7:
func opcodeCB0xB7(cpu *CPU) int {
	cpu.a = bit.Reset(6, cpu.a)
	return 8
}

//RES 7, B
//#CB0xB8:
func opcodeCB0xB8(cpu *CPU) int {
	cpu.b = bit.Reset(7, cpu.b)
	return 8
}

//RES 7, C
//#CB0xB9:
func opcodeCB0xB9(cpu *CPU) int {
	cpu.c = bit.Reset(7, cpu.c)
	return 8
}

//RES 7, D
//#CB0xBA:
func opcodeCB0xBA(cpu *CPU) int {
	cpu.d = bit.Reset(7, cpu.d)
	return 8
}

//RES 7, E
//#CB0xBB:
func opcodeCB0xBB(cpu *CPU) int {
	cpu.e = bit.Reset(7, cpu.e)
	return 8
}

//RES 7, H
//#CB0xBC:
func opcodeCB0xBC(cpu *CPU) int {
	cpu.h = bit.Reset(7, cpu.h)
	return 8
}

//RES 7, L
//#CB0xBD:
func opcodeCB0xBD(cpu *CPU) int {
	cpu.l = bit.Reset(7, cpu.l)
	return 8
}

//RES 7, (HL)
//#CB0xBE:
func opcodeCB0xBE(cpu *CPU) int {
	cpu.writeHL(bit.Reset(7, cpu.readHL()))
	return 16
}

//RES 7, A
//#CB0xBF:
func opcodeCB0xBF(cpu *CPU) int {
	cpu.a = bit.Reset(7, cpu.a)
	return 8
}

//SET 0, B
//#CB0xC0:
func opcodeCB0xC0(cpu *CPU) int {
	cpu.b = bit.Set(0, cpu.b)
	return 8
}

//SET 0, C
//#CB0xC1:
func opcodeCB0xC1(cpu *CPU) int {
	cpu.c = bit.Set(0, cpu.c)
	return 8
}

//SET 0, D
//#CB0xC2:
func opcodeCB0xC2(cpu *CPU) int {
	cpu.d = bit.Set(0, cpu.d)
	return 8
}

//SET 0, E
//#CB0xC3:
func opcodeCB0xC3(cpu *CPU) int {
	cpu.e = bit.Set(0, cpu.e)
	return 8
}

//SET 0, H
//#CB0xC4:
func opcodeCB0xC4(cpu *CPU) int {
	cpu.h = bit.Set(0, cpu.h)
	return 8
}

//SET 0, L
//#CB0xC5:
func opcodeCB0xC5(cpu *CPU) int {
	cpu.l = bit.Set(0, cpu.l)
	return 8
}

//SET 0, (HL)
//#CB0xC6:
func opcodeCB0xC6(cpu *CPU) int {
	cpu.writeHL(bit.Set(0, cpu.readHL()))
	return 16
}

//SET 0, A
//#CB0xC7:
func opcodeCB0xC7(cpu *CPU) int {
	cpu.a = bit.Set(0, cpu.a)
	return 8
}

//SET 1, B
//#CB0xC8:
func opcodeCB0xC8(cpu *CPU) int {
	cpu.b = bit.Set(1, cpu.b)
	return 8
}

//SET 1, C
//#CB0xC9:
func opcodeCB0xC9(cpu *CPU) int {
	cpu.c = bit.Set(1, cpu.c)
	return 8
}

//SET 1, D
//#CB0xCA:
func opcodeCB0xCA(cpu *CPU) int {
	cpu.d = bit.Set(1, cpu.d)
	return 8
}

//SET 1, E
//#CB0xCB:
func opcodeCB0xCB(cpu *CPU) int {
	cpu.e = bit.Set(1, cpu.e)
	return 8
}

//SET 1, H
//#CB0xCC:
func opcodeCB0xCC(cpu *CPU) int {
	cpu.h = bit.Set(1, cpu.h)
	return 8
}

//SET 1, L
//#CB0xCD:
func opcodeCB0xCD(cpu *CPU) int {
	cpu.l = bit.Set(1, cpu.l)
	return 8
}

//SET 1, (HL)
//#CB0xCE:
func opcodeCB0xCE(cpu *CPU) int {
	cpu.writeHL(bit.Set(1, cpu.readHL()))
	return 16
}

//SET 1, A
//#CB0xCF:
func opcodeCB0xCF(cpu *CPU) int {
	cpu.a = bit.Set(1, cpu.a)
	return 8
}

//SET 2, B
//#CB0xD0:
func opcodeCB0xD0(cpu *CPU) int {
	cpu.b = bit.Set(2, cpu.b)
	return 8
}

//SET 2, C
//#CB0xD1:
func opcodeCB0xD1(cpu *CPU) int {
	cpu.c = bit.Set(2, cpu.c)
	return 8
}

//SET 2, D
//#CB0xD2:
func opcodeCB0xD2(cpu *CPU) int {
	cpu.d = bit.Set(2, cpu.d)
	return 8
}

//SET 2, E
//#CB0xD3:
func opcodeCB0xD3(cpu *CPU) int {
	cpu.e = bit.Set(2, cpu.e)
	return 8
}

//SET 2, H
//#CB0xD4:
func opcodeCB0xD4(cpu *CPU) int {
	cpu.h = bit.Set(2, cpu.h)
	return 8
}

//SET 2, L
//#CB0xD5:
func opcodeCB0xD5(cpu *CPU) int {
	cpu.l = bit.Set(2, cpu.l)
	return 8
}

//SET 2, (HL)
//#CB0xD6:
func opcodeCB0xD6(cpu *CPU) int {
	cpu.writeHL(bit.Set(2, cpu.readHL()))
	return 16
}

//SET 2, A
//#CB0xD7:
func opcodeCB0xD7(cpu *CPU) int {
	cpu.a = bit.Set(2, cpu.a)
	return 8
}

//SET 3, B
//#CB0xD8:
func opcodeCB0xD8(cpu *CPU) int {
	cpu.b = bit.Set(3, cpu.b)
	return 8
}

//SET 3, C
//#CB0xD9:
func opcodeCB0xD9(cpu *CPU) int {
	cpu.c = bit.Set(3, cpu.c)
	return 8
}

//SET 3, D
//#CB0xDA:
func opcodeCB0xDA(cpu *CPU) int {
	cpu.d = bit.Set(3, cpu.d)
	return 8
}

//SET 3, E
//#CB0xDB:
func opcodeCB0xDB(cpu *CPU) int {
	cpu.e = bit.Set(3, cpu.e)
	return 8
}

//SET 3, H
//#CB0xDC:
func opcodeCB0xDC(cpu *CPU) int {
	cpu.h = bit.Set(3, cpu.h)
	return 8
}

//SET 3, L
//#CB0xDD:
func opcodeCB0xDD(cpu *CPU) int {
	cpu.l = bit.Set(3, cpu.l)
	return 8
}

//SET 3, (HL)
//#CB0xDE:
func opcodeCB0xDE(cpu *CPU) int {
	cpu.writeHL(bit.Set(3, cpu.readHL()))
	return 16
}

//SET 3, A
//#CB0xDF:
func opcodeCB0xDF(cpu *CPU) int {
	cpu.a = bit.Set(3, cpu.a)
	return 8
}

//SET 4, B
//#CB0xE0:
func opcodeCB0xE0(cpu *CPU) int {
	cpu.b = bit.Set(4, cpu.b)
	return 8
}

//SET 4, C
//#CB0xE1:
func opcodeCB0xE1(cpu *CPU) int {
	cpu.c = bit.Set(4, cpu.c)
	return 8
}

//SET 4, D
//#CB0xE2:
func opcodeCB0xE2(cpu *CPU) int {
	cpu.d = bit.Set(4, cpu.d)
	return 8
}

//SET 4, E
//#CB0xE3:
func opcodeCB0xE3(cpu *CPU) int {
	cpu.e = bit.Set(4, cpu.e)
	return 8
}

//SET 4, H
//#CB0xE4:
func opcodeCB0xE4(cpu *CPU) int {
	cpu.h = bit.Set(4, cpu.h)
	return 8
}

//SET 4, L
//#CB0xE5:
func opcodeCB0xE5(cpu *CPU) int {
	cpu.l = bit.Set(4, cpu.l)
	return 8
}

//SET 4, (HL)
//#CB0xE6:
func opcodeCB0xE6(cpu *CPU) int {
	cpu.writeHL(bit.Set(4, cpu.readHL()))
	return 16
}

//SET 4, A
//#CB0xE7:
func opcodeCB0xE7(cpu *CPU) int {
	cpu.a = bit.Set(4, cpu.a)
	return 8
}

//SET 5, B
//#CB0xE8:
func opcodeCB0xE8(cpu *CPU) int {
	cpu.b = bit.Set(5, cpu.b)
	return 8
}

//SET 5, C
//#CB0xE9:
func opcodeCB0xE9(cpu *CPU) int {
	cpu.c = bit.Set(5, cpu.c)
	return 8
}

//SET 5, D
//#CB0xEA:
func opcodeCB0xEA(cpu *CPU) int {
	cpu.d = bit.Set(5, cpu.d)
	return 8
}

//SET 5, E
//#CB0xEB:
func opcodeCB0xEB(cpu *CPU) int {
	cpu.e = bit.Set(5, cpu.e)
	return 8
}

//SET 5, H
//#CB0xEC:
func opcodeCB0xEC(cpu *CPU) int {
	cpu.h = bit.Set(5, cpu.h)
	return 8
}

//SET 5, L
//#CB0xED:
func opcodeCB0xED(cpu *CPU) int {
	cpu.l = bit.Set(5, cpu.l)
	return 8
}

//SET 5, (HL)
//#CB0xEE:
func opcodeCB0xEE(cpu *CPU) int {
	cpu.writeHL(bit.Set(5, cpu.readHL()))
	return 16
}

//SET 5, A
//#CB0xEF:
func opcodeCB0xEF(cpu *CPU) int {
	cpu.a = bit.Set(5, cpu.a)
	return 8
}

//SET 6, B
//#CB0xF0:
func opcodeCB0xF0(cpu *CPU) int {
	cpu.b = bit.Set(6, cpu.b)
	return 8
}

//SET 6, C
//#CB0xF1:
func opcodeCB0xF1(cpu *CPU) int {
	cpu.c = bit.Set(6, cpu.c)
	return 8
}

//SET 6, D
//#CB0xF2:
func opcodeCB0xF2(cpu *CPU) int {
	cpu.d = bit.Set(6, cpu.d)
	return 8
}

//SET 6, E
//#CB0xF3:
func opcodeCB0xF3(cpu *CPU) int {
	cpu.e = bit.Set(6, cpu.e)
	return 8
}

//SET 6, H
//#CB0xF4:
func opcodeCB0xF4(cpu *CPU) int {
	cpu.h = bit.Set(6, cpu.h)
	return 8
}

//SET 6, L
//#CB0xF5:
func opcodeCB0xF5(cpu *CPU) int {
	cpu.l = bit.Set(6, cpu.l)
	return 8
}

//SET 6, (HL)
//#CB0xF6:
func opcodeCB0xF6(cpu *CPU) int {
	cpu.writeHL(bit.Set(6, cpu.readHL()))
	return 16
}

//SET 6, A
//#CB0xF7:
func opcodeCB0xF7(cpu *CPU) int {
	cpu.a = bit.Set(6, cpu.a)
	return 8
}

//SET 7, B
//#CB0xF8:
func opcodeCB0xF8(cpu *CPU) int {
	cpu.b = bit.Set(7, cpu.b)
	return 8
}

//SET 7, C
//#CB0xF9:
func opcodeCB0xF9(cpu *CPU) int {
	cpu.c = bit.Set(7, cpu.c)
	return 8
}

//SET 7, D
//#CB0xFA:
func opcodeCB0xFA(cpu *CPU) int {
	cpu.d = bit.Set(7, cpu.d)
	return 8
}

//SET 7, E
//#CB0xFB:
func opcodeCB0xFB(cpu *CPU) int {
	cpu.e = bit.Set(7, cpu.e)
	return 8
}

//SET 7, H
//#CB0xFC:
func opcodeCB0xFC(cpu *CPU) int {
	cpu.h = bit.Set(7, cpu.h)
	return 8
}

//SET 7, L
//#CB0xFD:
func opcodeCB0xFD(cpu *CPU) int {
	cpu.l = bit.Set(7, cpu.l)
	return 8
}

//SET 7, (HL)
//#CB0xFE:
func opcodeCB0xFE(cpu *CPU) int {
	cpu.writeHL(bit.Set(7, cpu.readHL()))
	return 16
}

//SET 7, A
//#CB0xFF:
func opcodeCB0xFF(cpu *CPU) int {
	cpu.a = bit.Set(7, cpu.a)
	return 8
}
