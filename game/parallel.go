package game

import (
	"runtime"
	"sync"

	"github.com/mlange-42/ark/ecs"

	"github.com/Slatibartfas/Helios-Ascension-sub000/config"
)

// workChunk is a range of one depth level for a worker to propagate.
type workChunk struct {
	entities []ecs.Entity
	simTime  float64
}

// parallelState holds the persistent propagation workers. Bodies within
// one depth level write disjoint positions and read only parents from
// earlier levels, so chunks of a level are safe to run concurrently.
type parallelState struct {
	numWorkers int

	workChan chan workChunk // sends work to workers
	doneChan chan struct{}  // workers signal completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup // tracks active workers
	running  bool           // true if workers are running
}

func newParallelState(workers int) *parallelState {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &parallelState{numWorkers: workers}
}

// startWorkers launches persistent worker goroutines.
func (p *parallelState) startWorkers(g *Game) {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(g)
	}
}

// stopWorkers signals all workers to exit and waits for them.
func (p *parallelState) stopWorkers() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker runs in a goroutine, propagating chunks until stopped.
func (p *parallelState) worker(g *Game) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			g.propagation.PropagateSlice(g.world, chunk.entities, chunk.simTime)
			p.doneChan <- struct{}{}
		}
	}
}

// propagate advances all bodies to simTime, level by level. Small levels
// run single-threaded; goroutine overhead beats the win below the
// threshold.
func (g *Game) propagate(simTime float64) {
	threshold := config.Cfg().Simulation.ParallelThreshold

	for _, level := range g.propagation.Levels(g.world) {
		if len(level) < threshold {
			g.propagation.PropagateSlice(g.world, level, simTime)
			continue
		}
		g.propagateLevelParallel(level, simTime)
	}
}

// propagateLevelParallel dispatches one depth level to the worker pool
// and waits for every chunk to land before the next level starts.
func (g *Game) propagateLevelParallel(level []ecs.Entity, simTime float64) {
	if !g.parallel.running {
		g.parallel.startWorkers(g)
	}

	numWorkers := g.parallel.numWorkers
	chunkSize := (len(level) + numWorkers - 1) / numWorkers

	dispatched := 0
	for start := 0; start < len(level); start += chunkSize {
		end := start + chunkSize
		if end > len(level) {
			end = len(level)
		}
		g.parallel.workChan <- workChunk{entities: level[start:end], simTime: simTime}
		dispatched++
	}

	for i := 0; i < dispatched; i++ {
		<-g.parallel.doneChan
	}
}
