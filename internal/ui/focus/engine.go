package focus

import (
	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/application/usecase"
	"github.com/bnema/remotenav/internal/domain/repository"
)

// Deps are the collaborators an Engine is built from.
// Scroller, Router and Memory are optional.
type Deps struct {
	Surface  port.Surface
	Renderer port.FocusRenderer
	Scroller port.Scroller
	Router   port.Router
	Memory   repository.FocusMemoryRepository
}

// Engine is the single owned navigation context. It is created once at
// application start and handed by reference to input adapters and screens.
type Engine struct {
	Registry   *Registry
	Search     *usecase.SpatialSearchUseCase
	Controller *Controller
	Back       *BackStack
}

// NewEngine wires the registry, spatial search, controller and back stack.
func NewEngine(deps Deps, tuning usecase.SearchTuning, opts Options) *Engine {
	registry := NewRegistry(deps.Surface)
	search := usecase.NewSpatialSearchUseCase(tuning)
	return &Engine{
		Registry:   registry,
		Search:     search,
		Controller: NewController(registry, search, deps.Renderer, deps.Scroller, deps.Memory, opts),
		Back:       NewBackStack(deps.Router),
	}
}

// RegisterBackHandler pushes a Back interceptor; call the result on unmount.
func (e *Engine) RegisterBackHandler(handler BackHandler) (unregister func()) {
	return e.Back.Register(handler)
}

// Reconfigure applies new tuning to a running engine.
func (e *Engine) Reconfigure(tuning usecase.SearchTuning, opts Options) {
	e.Search.SetTuning(tuning)
	e.Controller.SetOptions(opts)
}
