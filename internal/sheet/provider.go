package sheet

import (
	"github.com/google/wire"

	"github.com/arahhq/hr-office/internal/biz"
)

// ProviderSet is sheet providers.
var ProviderSet = wire.NewSet(NewCodec, wire.Bind(new(biz.SheetCodec), new(*Codec)))
