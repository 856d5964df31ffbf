package structural

import (
	"context"
	"fmt"
	"io"
)

type CPU struct{ out io.Writer }

func (c CPU) Start() { fmt.Fprintln(c.out, "CPU started.") }
func (c CPU) Stop()  { fmt.Fprintln(c.out, "CPU stopped.") }

type Memory struct{ out io.Writer }

func (m Memory) Load(position int64, _ []byte) {
	fmt.Fprintf(m.out, "Loading data into memory at position: %d\n", position)
}

type Disk struct{ out io.Writer }

func (d Disk) Read(lba int64, size int) []byte {
	fmt.Fprintf(d.out, "Reading %d bytes from disk at LBA: %d\n", size, lba)
	return make([]byte, size)
}

// Computer is the facade over CPU, Memory and Disk.
type Computer struct {
	cpu    CPU
	memory Memory
	disk   Disk
	out    io.Writer
}

func NewComputer(out io.Writer) *Computer {
	return &Computer{
		cpu:    CPU{out: out},
		memory: Memory{out: out},
		disk:   Disk{out: out},
		out:    out,
	}
}

const bootSectorSize = 1024

func (c *Computer) Start() {
	c.cpu.Start()
	c.memory.Load(0, c.disk.Read(0, bootSectorSize))
	fmt.Fprintln(c.out, "Computer started.")
}

func (c *Computer) Stop() {
	c.cpu.Stop()
	fmt.Fprintln(c.out, "Computer stopped.")
}

func FacadeDemo(_ context.Context, w io.Writer) error {
	computer := NewComputer(w)
	computer.Start()
	computer.Stop()
	return nil
}
