package folio3d

// LoadState describes where a model slot is in its loading lifecycle.
type LoadState int

const (
	// LoadPending means the slot's model is still being fetched and parsed.
	LoadPending LoadState = iota
	// LoadLoaded means the slot's model is in the scene and interactive.
	LoadLoaded
	// LoadFailed means loading errored; the slot stays empty and inert.
	LoadFailed
)

// LoadableModel tracks one portfolio model slot: its key, its loaded
// hierarchy (once available), and its load state.
type LoadableModel struct {
	Key   PortfolioKey
	State LoadState
	// Root is the loaded hierarchy's root node; nil until loading finishes.
	Root INode
	// Err holds the load error when State is LoadFailed.
	Err error
	// hitTargets are the bounding objects raycasts test to hover this model.
	hitTargets NodeCollection
}

// loadResult carries one finished load from its goroutine back to the tick
// loop.
type loadResult struct {
	key  PortfolioKey
	root INode
	err  error
}

// beginLoad parses the glTF file at source on its own goroutine, delivering
// the result to the Widget's tick loop. Parsing touches no GPU or scene
// state, so it's safe off the main thread; the scene is only mutated when
// the tick loop drains the result.
func (widget *Widget) beginLoad(key PortfolioKey, source string) {
	go func() {
		root, err := LoadGLTFFile(source)
		widget.loadResults <- loadResult{key: key, root: root, err: err}
	}()
}

// drainLoadResults applies any finished loads without blocking. Called at the
// top of every tick, so models pop into the scene on the first tick after
// their load completes.
func (widget *Widget) drainLoadResults() {

	for {

		select {

		case result := <-widget.loadResults:

			model, ok := widget.models[result.key]
			if !ok {
				continue
			}

			if result.err != nil {
				model.State = LoadFailed
				model.Err = result.err
				widget.logger.Printf("folio3d: loading model %q failed: %v", result.key, result.err)
				continue
			}

			widget.RegisterModel(result.key, result.root)

		default:
			return
		}

	}

}
