package status

import (
	"os"
	"sync/atomic"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessSampler publishes this process's CPU and memory use into a registry
type ProcessSampler struct {
	proc *process.Process

	cpu     *AtomicFloat
	rss     *atomic.Int64
	threads *atomic.Int64
}

// NewProcessSampler binds the current process to the proc.* metrics of reg
func NewProcessSampler(reg *Registry) (*ProcessSampler, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &ProcessSampler{
		proc:    p,
		cpu:     reg.Floats.Get("proc.cpu"),
		rss:     reg.Ints.Get("proc.rss_kb"),
		threads: reg.Ints.Get("proc.threads"),
	}, nil
}

// Sample refreshes the metrics; CPU is the percentage since the previous call
// The first error stops the update, earlier fields keep their new values
func (s *ProcessSampler) Sample() error {
	cpu, err := s.proc.Percent(0)
	if err != nil {
		return err
	}
	s.cpu.Set(cpu)

	mem, err := s.proc.MemoryInfo()
	if err != nil {
		return err
	}
	s.rss.Store(int64(mem.RSS / 1024))

	threads, err := s.proc.NumThreads()
	if err != nil {
		return err
	}
	s.threads.Store(int64(threads))
	return nil
}
