//go:build unix

package size

import (
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sys/unix"
)

// Watch notifies on the returned channel when the controlling terminal is resized.
// Notifications are dropped while a previous one is pending.
// stop ends the watch and closes the channel.
func Watch() (_ <-chan struct{}, stop func(), _ error) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGWINCH)
	done := make(chan struct{})
	resized := make(chan struct{}, 1)
	go func() {
		defer close(resized)
		for {
			select {
			case <-done:
				return
			case <-sigs:
				select {
				case resized <- struct{}{}:
				default:
				}
			}
		}
	}()
	var once sync.Once
	stop = func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
		})
	}
	return resized, stop, nil
}
