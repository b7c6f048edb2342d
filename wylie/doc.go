/*
Package wylie converts EWTS (Extended Wylie) transliteration into Tibetan
Unicode.

Conversion is done in three layers. A driver loop walks over the tokens of
the input, passing punctuation, escapes and [non-Tibetan text] through and
handing runs of letters to a syllable parser. The syllable parser builds a
tsekbar (a syllable, delimited by a tsek) from a sequence of stacks, and
validates the placement of prefixes and suffixes with a small state
machine. The stack parser assembles one vertical cluster of consonants,
complete with vowel signs and final marks.

Malformed input never makes conversion fail. Anything that looks like a
transliteration mistake results in a Diagnostic, and conversion continues
with the most plausible reading.

	conv := wylie.MustNew(wylie.DefaultOptions)
	var diags []wylie.Diagnostic
	tib := conv.Convert("bkra shis bde legs/", &diags)

A Converter is immutable and may be used by any number of goroutines
concurrently, as long as every call gets its own diagnostics slice.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package wylie

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
