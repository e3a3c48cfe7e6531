package core

import "testing"

type probeLayer struct {
	name    string
	visited *[]string
	handles bool
}

func (p *probeLayer) OnAttach(*Engine)          {}
func (p *probeLayer) OnDetach(*Engine)          {}
func (p *probeLayer) OnUpdate(*Engine, float64) {}
func (p *probeLayer) OnRender(*Engine, float64) {}
func (p *probeLayer) OnEvent(*Engine, Event) bool {
	*p.visited = append(*p.visited, p.name)
	return p.handles
}

func TestLayerStackEventOrder(t *testing.T) {
	var visited []string
	var ls LayerStack
	ls.Push(&probeLayer{name: "bottom", visited: &visited})
	ls.Push(&probeLayer{name: "top", visited: &visited})

	// Events travel top-down until a layer handles them.
	ls.ForEachReverse(func(l Layer) bool { return l.OnEvent(nil, EventCloseRequested{}) })
	if len(visited) != 2 || visited[0] != "top" || visited[1] != "bottom" {
		t.Errorf("event order = %v, want [top bottom]", visited)
	}

	visited = nil
	ls.Push(&probeLayer{name: "overlay", visited: &visited, handles: true})
	ls.ForEachReverse(func(l Layer) bool { return l.OnEvent(nil, EventCloseRequested{}) })
	if len(visited) != 1 || visited[0] != "overlay" {
		t.Errorf("handled event leaked past the overlay: %v", visited)
	}
}

func TestLayerStackPop(t *testing.T) {
	var visited []string
	var ls LayerStack
	if _, ok := ls.Pop(); ok {
		t.Fatal("pop on empty stack reported a layer")
	}
	a := &probeLayer{name: "a", visited: &visited}
	b := &probeLayer{name: "b", visited: &visited}
	ls.Push(a)
	ls.Push(b)
	if l, ok := ls.Pop(); !ok || l != Layer(b) {
		t.Error("pop did not return the most recent layer")
	}
	if l, ok := ls.Pop(); !ok || l != Layer(a) {
		t.Error("second pop did not return the first layer")
	}
}
