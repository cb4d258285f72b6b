package engine

// reconcileWater loads the water count, resetting it first if the stored
// date-key is not today.
func (e *Engine) reconcileWater() (int, error) {
	count, dateKey, err := e.store.GetWaterGlasses()
	if err != nil {
		return 0, err
	}
	today := e.Today()
	if dateKey != today {
		count = 0
		if err := e.store.SaveWaterGlasses(count, today); err != nil {
			return 0, err
		}
	}
	return count, nil
}

// WaterGlasses returns today's count.
func (e *Engine) WaterGlasses() (int, error) {
	return e.reconcileWater()
}

// WaterTarget returns today's glass target from the routine.
func (e *Engine) WaterTarget() (int, error) {
	r, err := e.Routine()
	if err != nil {
		return 0, err
	}
	return r.WaterIntake, nil
}

// AddWater increments the count by one glass, silently capped at the
// day's target: calls past the target are no-ops, not errors.
func (e *Engine) AddWater() (int, error) {
	count, err := e.reconcileWater()
	if err != nil {
		return 0, err
	}
	target, err := e.WaterTarget()
	if err != nil {
		return 0, err
	}
	if count >= target {
		return count, nil
	}
	count++
	if err := e.store.SaveWaterGlasses(count, e.Today()); err != nil {
		return 0, err
	}
	return count, nil
}

// ResetWater sets the count back to zero. Manual correction only; the
// daily reset happens lazily on read.
func (e *Engine) ResetWater() error {
	if _, err := e.reconcileWater(); err != nil {
		return err
	}
	return e.store.SaveWaterGlasses(0, e.Today())
}
