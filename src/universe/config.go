package universe

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"simlife/src/life"
)

//LoadOptions reads the JSON configuration file over the base options
//the fields missing in the file keep the base values
func LoadOptions(filename string, base Options) (Options, error) {
	o := base

	data, err := os.ReadFile(filename)
	if err != nil {
		return base, errors.Wrapf(err, "[LoadOptions] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &o); err != nil {
		return base, errors.Wrapf(err, "[LoadOptions] failed to unmarshal data from file: %+v", filename)
	}

	if err = o.Validate(); err != nil {
		return base, errors.Wrapf(err, "[LoadOptions] invalid options in file: %+v", filename)
	}
	return o, nil
}

//UnmarshalJSON reads the interval as the duration string, for example "150ms", as the -i flag does
func (o *Options) UnmarshalJSON(data []byte) error {
	type options Options
	aux := struct {
		*options
		Interval string `json:"interval"`
	}{options: (*options)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Interval == "" {
		return nil
	}
	d, err := time.ParseDuration(aux.Interval)
	if err != nil {
		return errors.Wrapf(err, "interval %q", aux.Interval)
	}
	o.Interval = d
	return nil
}

//Validate checks the options which can't be fixed by the universe itself
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Errorf("dimension must be positive, got %v x %v", o.Width, o.Height)
	}
	if o.Density < 0 || o.Density > 1 {
		return errors.Errorf("density must be within [0,1], got %v", o.Density)
	}
	for _, s := range life.Strategies() {
		if s == o.Engine {
			return nil
		}
	}
	return errors.Wrapf(life.ErrUnknownStrategy, "engine %q", string(o.Engine))
}
