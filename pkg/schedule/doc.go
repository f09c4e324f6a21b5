// Package schedule provides Schedule, a fluent builder for five-field cron
// expressions.
//
// Each method returns a new value, so schedules can be shared and used as
// map keys:
//
//	s, err := schedule.New().Weekly().OnFriday().At(17, 30)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(s) // 30 17 * * 5
//
// Methods that take a value validate it immediately and return an error
// naming the offending argument; the receiver is unaffected.
//
// Most users should import the root package github.com/jdziat/fluentcron
// which re-exports these functions.
package schedule
