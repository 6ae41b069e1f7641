package usecase

import "go.uber.org/fx"

// Module provides allocation use cases to the fx container.
var Module = fx.Provide(NewOptimizeUseCase)
