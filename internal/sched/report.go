package sched

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// PrintQueue dumps the run queue of the given CPU, head first.
func (s *Scheduler) PrintQueue(w io.Writer, cpu int) {
	fmt.Fprintf(w, "cpu%d tasks:\n", cpu)
	for _, h := range s.cpus[cpu].Queue() {
		fmt.Fprintf(w, "task id %d\n", s.env.Tasks.Get(h).ID)
	}
}

func PrintSeparator(w io.Writer) {
	fmt.Fprintln(w, "###")
}

// PrintCPUClocks prints the clock and idle time of every CPU.
func (s *Scheduler) PrintCPUClocks(w io.Writer) {
	for _, c := range s.cpus {
		fmt.Fprintf(w, "cpu %d has clock %d\n", c.ID(), c.Clock())
		fmt.Fprintf(w, "  idle time %d\n", c.IdleTime())
	}
}

// PrintTaskRuntime prints the runtime of every task still sitting in a run
// queue. The task each CPU was running when the loop stopped is not queued
// and is therefore left out.
func (s *Scheduler) PrintTaskRuntime(w io.Writer) {
	for _, c := range s.cpus {
		for _, h := range c.Queue() {
			t := s.env.Tasks.Get(h)
			fmt.Fprintf(w, "task %d has total runtime %d\n", t.ID, t.TotalRuntime)
		}
	}
}

// PrintSummaryTable renders one row per CPU.
func (s *Scheduler) PrintSummaryTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("CPU", "Clock", "Idle Time", "Busy %", "Dispatches", "Queued", "Running")

	for _, c := range s.cpus {
		running := s.env.Tasks.Get(c.Running())
		runningStr := strconv.FormatUint(uint64(running.ID), 10)
		if c.Running() == c.IdleHandle() {
			runningStr = "idle"
		}

		busy := 0.0
		if c.Clock() > 0 {
			busy = 100 * float64(c.Clock()-c.IdleTime()) / float64(c.Clock())
		}

		if err := table.Append(
			strconv.Itoa(c.ID()),
			strconv.FormatUint(c.Clock(), 10),
			strconv.FormatUint(c.IdleTime(), 10),
			fmt.Sprintf("%.1f", busy),
			strconv.FormatUint(c.Dispatches(), 10),
			strconv.Itoa(c.QueueLen()),
			runningStr,
		); err != nil {
			return fmt.Errorf("summary table: %w", err)
		}
	}
	return table.Render()
}

// PrintTaskTable renders every user task in id order, wherever it currently sits.
func (s *Scheduler) PrintTaskTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Task", "Workload", "CPU", "State", "Dispatches", "Runtime")

	var err error
	s.env.Tasks.Each(func(_ Handle, t *Task) {
		if err != nil {
			return
		}
		err = table.Append(
			strconv.FormatUint(uint64(t.ID), 10),
			t.Work.Name(),
			strconv.Itoa(s.CPUFor(t.ID)),
			t.State.String(),
			strconv.FormatUint(t.Dispatches, 10),
			strconv.FormatUint(t.TotalRuntime, 10),
		)
	})
	if err != nil {
		return fmt.Errorf("task table: %w", err)
	}
	return table.Render()
}
