package colornode

import _ "github.com/BrandonKowalski/certifiable" // CA certificates for Fetch on devices without a system trust store
