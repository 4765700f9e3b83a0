package records

import "github.com/m04kA/SIA-BookingService/internal/infra/storage/kv"

// Store переиспользуем контракт kv хранилища
type Store = kv.Store
