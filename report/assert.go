package report

import "github.com/restverse/restcall/rest"

// compile-time assertions
var _ rest.Reporter = (*Log)(nil)
var _ rest.Reporter = (*OTel)(nil)
