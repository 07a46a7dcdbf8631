package inline

import (
	"context"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	pool "github.com/jolestar/go-commons-pool"
)

// machine holds the scratch stacks for parsing and rendering. Machines are
// short-lived: one is borrowed for parsing an input and one for rendering
// each output chunk. To avoid repeated allocation of stacks we will pool them.
type machine struct {
	sc      *scanner
	frames  *arraystack.Stack // parser frames
	work    *arraystack.Stack // renderer work items
	buffers *arraystack.Stack // renderer capture buffers
	results *arraystack.Stack // captured renderings of arguments
	pooled  bool              // false for machines created outside the pool
}

func newMachine() *machine {
	return &machine{
		sc:      newScanner(""),
		frames:  arraystack.New(),
		work:    arraystack.New(),
		buffers: arraystack.New(),
		results: arraystack.New(),
	}
}

func (m *machine) clear() {
	m.sc.init("")
	m.frames.Clear()
	m.work.Clear()
	m.buffers.Clear()
	m.results.Clear()
}

type machinePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalMachinePool *machinePool

func init() {
	globalMachinePool = &machinePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			m := newMachine()
		m.pooled = true
		return m, nil
		})
	globalMachinePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalMachinePool.opool = pool.NewObjectPool(globalMachinePool.ctx, factory, config)
}

// borrowMachine returns a cleared machine from the pool. If the pool fails
// to deliver, a fresh machine is created.
func borrowMachine() *machine {
	o, err := globalMachinePool.opool.BorrowObject(globalMachinePool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow machine: %v", err)
		return newMachine()
	}
	return o.(*machine)
}

// release clears the machine and puts it back into the pool. Machines not
// borrowed from the pool are left to the garbage collector.
func (m *machine) release() {
	m.clear()
	if !m.pooled {
		return
	}
	if err := globalMachinePool.opool.ReturnObject(globalMachinePool.ctx, m); err != nil {
		tracer().Errorf("cannot return machine to pool: %v", err)
	}
}

// --- Buffers ---------------------------------------------------------------

func (m *machine) openBuffer() {
	m.buffers.Push(&strings.Builder{})
}

func (m *machine) buffer() *strings.Builder {
	b, ok := m.buffers.Peek()
	if !ok {
		panic("renderer has no output buffer")
	}
	return b.(*strings.Builder)
}

func (m *machine) closeBuffer() string {
	b, ok := m.buffers.Pop()
	if !ok {
		panic("renderer buffer stack underflow")
	}
	return b.(*strings.Builder).String()
}
