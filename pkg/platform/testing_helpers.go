package platform

import "sync"

// ResetForTest clears the process-wide text view registry. This should only
// be called from tests.
func ResetForTest() {
	textViewRegistryOnce = sync.Once{}
	textViewRegistry = nil
}

// SetupTestRegistry resets the process-wide registry and registers the same
// reset as cleanup. Pass testing.T.Cleanup:
//
//	platform.SetupTestRegistry(t.Cleanup)
func SetupTestRegistry(cleanup func(func())) *TextViewRegistry {
	ResetForTest()
	cleanup(ResetForTest)
	return GetTextViewRegistry()
}
