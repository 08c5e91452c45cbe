package sieve

// Run builds a Context for cfg and sieves it fully: bootstrap, wheel
// rolling, the small-prime warmup, and then the segmented sweep
// (serial or parallel, chosen from cfg). The returned Context is
// ready for Primes or Emit.
func Run(cfg Config) (*Context, error) {
	ctx, err := New(cfg)
	if err != nil {
		return nil, err
	}

	ctx.bootstrap()
	ctx.extractPrimes(3) // primes[3] == 7: exposes everything up to 49

	lastWheelIdx := ctx.rollWheel(cfg.WheelDepth, 3)
	ctx.extractPrimes(lastWheelIdx)

	startIdx := lastWheelIdx + 1
	if cfg.Workers <= 1 || cfg.BlockSize > ctx.slots {
		ctx.sieveSerial(startIdx)
	} else {
		ctx.sieveParallel(startIdx)
	}

	return ctx, nil
}
