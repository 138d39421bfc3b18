// doc.go --  This file is part of goXC project.
// Mirzaeva Irina, 2023
//
//	goXC is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

// Package functional holds the concrete exchange, correlation and kinetic
// plug-ins evaluated by package xc. Every plug-in is an immutable value
// built by a validating constructor; New builds one by name.
package functional

import "errors"

var ErrUnknown = errors.New("functional: unknown functional")
