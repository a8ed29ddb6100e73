package game

import "sort"

// Built-in layouts
var layouts = map[string]string{
	"testClassic": `
%%%%%
% . %
%.G.%
% . %
%. .%
%   %
%  .%
%   %
%P .%
%%%%%
`,
	"minimaxClassic": `
%%%%%%%%%
%.P    G%
% %.%G%%%
%G    %%%
%%%%%%%%%
`,
	"trappedClassic": `
%%%%%%%%
%   P G%
%G%%%%%%
%....  %
%%%%%%%%
`,
	"smallClassic": `
%%%%%%%%%%%%%%%%%%%%
%......%G  G%......%
%.%%...%%  %%...%%.%
%.%o.%........%.o%.%
%.%%.%.%%%%%%.%.%%.%
%........P.........%
%%%%%%%%%%%%%%%%%%%%
`,
	"openClassic": `
%%%%%%%%%%%%%%%%%%%%%%%%%
%.. P  ....      ....   %
%..  ...  ...  ...  ... %
%..  ...  ...  ...  ... %
%..    ....      .... G %
%..  ...  ...  ...  ... %
%..  ...  ...  ...  ... %
%..    ....      ....  o%
%%%%%%%%%%%%%%%%%%%%%%%%%
`,
}

// LayoutNames returns the names of the built-in layouts in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
