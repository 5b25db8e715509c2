package project

import "errors"

var (
	// ErrNoIOCFile indicates the project directory contains no CubeMX
	// .ioc file.
	ErrNoIOCFile = errors.New("no .ioc file found in the project directory")

	// ErrMultipleIOCFiles indicates the project directory contains more
	// than one .ioc file and none is selected in stm32pio.ini.
	ErrMultipleIOCFiles = errors.New("multiple .ioc files found, set ioc_file in stm32pio.ini")

	// ErrBoardNotSet indicates an operation needs a PlatformIO board ID
	// but none is configured.
	ErrBoardNotSet = errors.New("PlatformIO board is not set")

	// ErrNotPIOInitialized indicates platformio.ini is missing so the
	// operation has nothing to work on.
	ErrNotPIOInitialized = errors.New("platformio.ini not found, initialize the PlatformIO project first")
)
