package cmd

import (
	"fmt"
)

const banner = `
   __          __    _
  / /   ____ _/ /   (_)________  ________  _________ _
 / /   / __ ` + "`" + `/ /   / / ___/ __ \/ ___/ _ \/ ___/ __ ` + "`" + `/
/ /___/ /_/ / /___/ / /__/ /_/ / /  /  __/ /  / /_/ /
\____/\__,_/_____/_/\___/\____/_/   \___/_/   \__,_/
`

func printBanner() {
	fmt.Printf("\x1b[34m%s\x1b[0m", banner)
	fmt.Printf("\x1b[32m  La Licorera storefront client - Version %s\x1b[0m\n\n", Version)
}
