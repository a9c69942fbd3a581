package duplog

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Dedup state owned exclusively by the pipeline goroutine
type pipeline struct {
	scope   int
	window  *window
	pending map[uint64]*DuplicatedMessages
	writer  Writer
	report  func(err error)
	metrics *metricStorage
}

func newPipeline(scope int, writer Writer, report func(err error), metrics *metricStorage) (p *pipeline) {
	p = &pipeline{
		scope:   scope,
		window:  newWindow(scope),
		pending: make(map[uint64]*DuplicatedMessages),
		writer:  writer,
		report:  report,
		metrics: metrics,
	}
	return
}

// Consumes one message: folds it into an aggregate if its id is still in the window,
// otherwise writes it and advances the window, flushing the aggregate of the id at the back.
func (p *pipeline) process(msg Message) {
	p.metrics.Received.Add(1)
	id := msg.ID()

	if p.window.Contains(id) {
		dm, found := p.pending[id]
		if !found {
			p.pending[id] = NewDuplicatedMessages(msg)
		} else {
			dm.Add(msg)
		}
		p.metrics.Duplicates.Add(1)
		return
	}

	p.write(msg)
	p.window.PushFront(id)

	if p.window.Len() >= p.scope {
		outID := p.window.Back()
		dm, found := p.pending[outID]
		if found {
			p.writeDup(dm)
			delete(p.pending, outID)
		}
		p.window.Truncate(p.scope)
	}
}

// Flushes every remaining aggregate, oldest window position first
func (p *pipeline) drain() {
	for _, id := range p.window.OldestFirst() {
		dm, found := p.pending[id]
		if !found {
			continue
		}
		p.writeDup(dm)
		delete(p.pending, id)
	}

	// Pending ids are always in the window, but never lose an aggregate
	for id, dm := range p.pending {
		p.writeDup(dm)
		delete(p.pending, id)
	}
}

// Releases writer resources after the final flush
func (p *pipeline) close() {
	closer, ok := p.writer.(io.Closer)
	if !ok {
		return
	}
	err := closer.Close()
	if err != nil {
		p.report(fmt.Errorf("failed to close writer: %w", err))
	}
}

func (p *pipeline) write(msg Message) {
	defer p.recoverWriter(func() string {
		return fmt.Sprintf("[%s] %q", msg.Level, msg.Text)
	})

	err := p.writer.Write(msg)
	if err != nil {
		p.metrics.WriteErrors.Add(1)
		p.report(fmt.Errorf("failed to write message [%s] %q: %w", msg.Level, msg.Text, err))
		return
	}
	p.metrics.Written.Add(1)
}

func (p *pipeline) writeDup(dm *DuplicatedMessages) {
	msg := dm.Message()
	defer p.recoverWriter(func() string {
		return fmt.Sprintf("%d duplicates of [%s] %q", dm.Count(), msg.Level, msg.Text)
	})

	err := p.writer.WriteDup(dm)
	if err != nil {
		p.metrics.WriteErrors.Add(1)
		p.report(fmt.Errorf("failed to write %d duplicates of [%s] %q: %w", dm.Count(), msg.Level, msg.Text, err))
		return
	}
	p.metrics.Aggregates.Add(1)
}

// Record writer panics and keep the pipeline running
func (p *pipeline) recoverWriter(describe func() string) {
	fatalError := recover()
	if fatalError == nil {
		return
	}
	p.metrics.Panics.Add(1)
	stack := debug.Stack()
	p.report(fmt.Errorf("panic in writer while writing %s: %v\n%s", describe(), fatalError, stack))
}
