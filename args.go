package main

// valueFlags consume the token that follows them, whatever it is.
var valueFlags = map[string]struct{}{
	"--api":       {},
	"--sdk-index": {},
}

var boolFlags = map[string]struct{}{
	"--update": {},
}

// checkArgs rejects any token other than --update, --api <path> and
// --sdk-index <path> before cobra, the config layer or the filesystem are
// touched. Inline "--api=path" forms, help and version flags are unknown.
func checkArgs(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if _, ok := boolFlags[arg]; ok {
			continue
		}
		if _, ok := valueFlags[arg]; ok {
			i++
			continue
		}
		return &UnknownArgumentError{Arg: arg}
	}
	return nil
}
