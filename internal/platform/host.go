package platform

import (
	"os/exec"
	"runtime"
	"strings"
)

// Flavor identifies the shell environment wrapping the host OS. Windows
// behind an MSYS, MinGW, or Cygwin shell needs different path handling than
// a native console.
type Flavor string

const (
	FlavorNative Flavor = "native"
	FlavorMSYS   Flavor = "msys"
	FlavorMinGW  Flavor = "mingw"
	FlavorCygwin Flavor = "cygwin"
)

// Host describes the detected host environment. It is built once at startup
// and passed explicitly to the components that need it.
type Host struct {
	OS     string // runtime.GOOS value
	Flavor Flavor
	Uname  string // uname -s output when available, otherwise the OS name
	LibExt string // native dynamic-library extension for plugin artifacts
}

// Getenv looks up an environment variable.
type Getenv func(key string) string

// CommandOutput runs a command and returns its trimmed stdout.
type CommandOutput func(name string, args ...string) (string, error)

// SystemCommandOutput runs commands against the real system.
func SystemCommandOutput(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// DetectHost builds the Host for the current process. The env lookup and
// command runner are injected so detection is testable without an MSYS or
// Cygwin install. Detection never fails; probe errors fall back to the
// GOOS defaults.
func DetectHost(getenv Getenv, run CommandOutput) Host {
	return detectHost(runtime.GOOS, getenv, run)
}

func detectHost(goos string, getenv Getenv, run CommandOutput) Host {
	h := Host{OS: goos, Flavor: FlavorNative}

	uname, err := run("uname", "-s")
	if err == nil && uname != "" {
		h.Uname = uname
	} else {
		h.Uname = goos
	}

	switch goos {
	case "linux":
		h.LibExt = ".so"
	case "darwin":
		h.LibExt = ".dylib"
	case "windows":
		h.LibExt = ".dll"
		h.Flavor = windowsFlavor(getenv, h.Uname)
	default:
		// Unrecognized GOOS: classify by the kernel name string. MSYS,
		// MinGW, and Cygwin shells report Windows-flavored kernels.
		h.Flavor = unameFlavor(h.Uname)
		if h.Flavor == FlavorNative {
			h.LibExt = ".so"
		} else {
			h.LibExt = ".dll"
		}
	}

	return h
}

// windowsFlavor classifies the shell a Windows binary is running under.
// MSYSTEM is set by MSYS2 and its MinGW/UCRT/Clang environments; Cygwin
// sets OSTYPE. The uname probe covers shells that export neither.
func windowsFlavor(getenv Getenv, uname string) Flavor {
	msystem := getenv("MSYSTEM")
	switch {
	case strings.HasPrefix(msystem, "MINGW"),
		strings.HasPrefix(msystem, "UCRT"),
		strings.HasPrefix(msystem, "CLANG"):
		return FlavorMinGW
	case msystem == "MSYS":
		return FlavorMSYS
	}

	if strings.Contains(strings.ToLower(getenv("OSTYPE")), "cygwin") {
		return FlavorCygwin
	}

	return unameFlavor(uname)
}

func unameFlavor(uname string) Flavor {
	switch {
	case strings.Contains(uname, "MINGW"):
		return FlavorMinGW
	case strings.Contains(uname, "MSYS"):
		return FlavorMSYS
	case strings.Contains(uname, "CYGWIN"):
		return FlavorCygwin
	}
	return FlavorNative
}

// Windowsish reports whether paths follow Windows conventions: native
// Windows or any of the Windows-flavored shells.
func (h Host) Windowsish() bool {
	return h.OS == "windows" || h.Flavor != FlavorNative
}
