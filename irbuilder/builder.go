/*
Package irbuilder exposes the operations the code generator needs to emit
LLVM IR as a concrete Go interface. The code generator is written against
Builder, never against github.com/llir/llvm directly.

LLBuilder is the only implementation: a thin, pure-Go, no-cgo wrapper over
llir/llvm's ir/types/constant/enum packages.
*/
package irbuilder

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// Value is an IR value usable as an operand: an alloca, a load result, an
// arithmetic result, or a constant.
type Value = value.Value

// Block is a basic block: an insertion point for instructions.
type Block = ir.Block

// Builder is the contract the code generator lowers GSM into.
type Builder interface {
	// DeclareWriteFunc declares `void @gsm_write(i32)` on the module.
	DeclareWriteFunc()

	// BeginMain opens `define i32 @main(i32, i8**)` and returns its entry
	// block as the current insertion point.
	BeginMain() *Block

	// NewBlock creates a new, unattached-to-control-flow-yet basic block
	// named name in the current function.
	NewBlock(name string) *Block

	// SetBlock makes b the current insertion point for subsequent
	// instructions.
	SetBlock(b *Block)

	// CurrentBlock returns the current insertion point.
	CurrentBlock() *Block

	// Alloca reserves a stack slot for an i32 local and records it under
	// name in the symbol table.
	Alloca(name string) Value

	// Lookup returns the stack slot previously allocated for name.
	Lookup(name string) (Value, bool)

	// ConstInt builds an i32 constant from its decimal text. LLBuilder
	// panics on text that is not an integer literal.
	ConstInt(text string) Value

	// Store writes val into the stack slot dst.
	Store(val Value, dst Value)

	// Load reads the current value out of the stack slot src.
	Load(src Value) Value

	// Add, Sub, Mul lower to the nsw (no-signed-wrap) arithmetic
	// instructions.
	Add(x, y Value) Value
	Sub(x, y Value) Value
	Mul(x, y Value) Value

	// Div, Rem lower to plain (non-nsw) sdiv/srem.
	Div(x, y Value) Value
	Rem(x, y Value) Value

	// And, Or lower to bitwise and/or over two i1 condition values — GSM's
	// and/or are eager, not short-circuiting.
	And(x, y Value) Value
	Or(x, y Value) Value

	// ICmpEQ/NE/SGT/SLT/SGE/SLE lower to icmp with the matching signed
	// predicate.
	ICmpEQ(x, y Value) Value
	ICmpNE(x, y Value) Value
	ICmpSGT(x, y Value) Value
	ICmpSLT(x, y Value) Value
	ICmpSGE(x, y Value) Value
	ICmpSLE(x, y Value) Value

	// CondBr emits a conditional branch on cond to whenTrue or whenFalse.
	CondBr(cond Value, whenTrue, whenFalse *Block)

	// Br emits an unconditional branch to target.
	Br(target *Block)

	// CallWrite emits a call to gsm_write(val).
	CallWrite(val Value)

	// RetZero emits `ret i32 0`, main's only return.
	RetZero()

	// String renders the complete module as textual LLVM IR.
	String() string
}

// LLBuilder implements Builder over a single github.com/llir/llvm Module.
type LLBuilder struct {
	module  *ir.Module
	mainFn  *ir.Func
	writeFn *ir.Func
	block   *ir.Block
	symbols map[string]Value
}

// NewLLBuilder creates an LLBuilder with a fresh, empty Module.
func NewLLBuilder() *LLBuilder {
	return &LLBuilder{
		module:  ir.NewModule(),
		symbols: make(map[string]Value),
	}
}

func (b *LLBuilder) DeclareWriteFunc() {
	param := ir.NewParam("", types.I32)
	b.writeFn = b.module.NewFunc("gsm_write", types.Void, param)
	b.writeFn.Linkage = enum.LinkageExternal
}

func (b *LLBuilder) BeginMain() *Block {
	argc := ir.NewParam("", types.I32)
	argv := ir.NewParam("", types.NewPointer(types.NewPointer(types.I8)))
	b.mainFn = b.module.NewFunc("main", types.I32, argc, argv)
	entry := b.mainFn.NewBlock("entry")
	b.block = entry
	return entry
}

func (b *LLBuilder) NewBlock(name string) *Block {
	return b.mainFn.NewBlock(name)
}

func (b *LLBuilder) SetBlock(blk *Block) { b.block = blk }

func (b *LLBuilder) CurrentBlock() *Block { return b.block }

func (b *LLBuilder) Alloca(name string) Value {
	slot := b.block.NewAlloca(types.I32)
	b.symbols[name] = slot
	return slot
}

func (b *LLBuilder) Lookup(name string) (Value, bool) {
	v, ok := b.symbols[name]
	return v, ok
}

func (b *LLBuilder) ConstInt(text string) Value {
	c, err := constant.NewIntFromString(types.I32, text)
	if err != nil {
		panic(err)
	}
	return c
}

func (b *LLBuilder) Store(val Value, dst Value) {
	b.block.NewStore(val, dst)
}

func (b *LLBuilder) Load(src Value) Value {
	return b.block.NewLoad(types.I32, src)
}

func (b *LLBuilder) Add(x, y Value) Value {
	inst := b.block.NewAdd(x, y)
	inst.OverflowFlags = []enum.OverflowFlag{enum.OverflowFlagNSW}
	return inst
}

func (b *LLBuilder) Sub(x, y Value) Value {
	inst := b.block.NewSub(x, y)
	inst.OverflowFlags = []enum.OverflowFlag{enum.OverflowFlagNSW}
	return inst
}

func (b *LLBuilder) Mul(x, y Value) Value {
	inst := b.block.NewMul(x, y)
	inst.OverflowFlags = []enum.OverflowFlag{enum.OverflowFlagNSW}
	return inst
}

func (b *LLBuilder) Div(x, y Value) Value { return b.block.NewSDiv(x, y) }
func (b *LLBuilder) Rem(x, y Value) Value { return b.block.NewSRem(x, y) }

func (b *LLBuilder) And(x, y Value) Value { return b.block.NewAnd(x, y) }
func (b *LLBuilder) Or(x, y Value) Value  { return b.block.NewOr(x, y) }

func (b *LLBuilder) ICmpEQ(x, y Value) Value  { return b.block.NewICmp(enum.IPredEQ, x, y) }
func (b *LLBuilder) ICmpNE(x, y Value) Value  { return b.block.NewICmp(enum.IPredNE, x, y) }
func (b *LLBuilder) ICmpSGT(x, y Value) Value { return b.block.NewICmp(enum.IPredSGT, x, y) }
func (b *LLBuilder) ICmpSLT(x, y Value) Value { return b.block.NewICmp(enum.IPredSLT, x, y) }
func (b *LLBuilder) ICmpSGE(x, y Value) Value { return b.block.NewICmp(enum.IPredSGE, x, y) }
func (b *LLBuilder) ICmpSLE(x, y Value) Value { return b.block.NewICmp(enum.IPredSLE, x, y) }

func (b *LLBuilder) CondBr(cond Value, whenTrue, whenFalse *Block) {
	b.block.NewCondBr(cond, whenTrue, whenFalse)
}

func (b *LLBuilder) Br(target *Block) {
	b.block.NewBr(target)
}

func (b *LLBuilder) CallWrite(val Value) {
	b.block.NewCall(b.writeFn, val)
}

func (b *LLBuilder) RetZero() {
	b.block.NewRet(constant.NewInt(types.I32, 0))
}

func (b *LLBuilder) String() string {
	return b.module.String()
}
